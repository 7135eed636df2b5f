package encoding

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/MetaFam/wyvern-schemas/pkg/types"
)

// bindTransfer 解析转移函数并绑定资产值
//
// Schema 里的函数是不可变模板，这里拷贝一份并把 Asset 槽位填上
// 资产对象提供的具体值。缺少绑定值是校验错误。
func bindTransfer(schema *types.Schema, asset types.Asset) (*types.AnnotatedFunctionABI, error) {
	template, err := schema.TransferFunction()
	if err != nil {
		return nil, err
	}

	fn := template.Clone()
	for i := range fn.Inputs {
		in := &fn.Inputs[i]
		if in.Kind != types.KindAsset {
			continue
		}
		value, ok := asset[in.Name]
		if !ok {
			return nil, &types.ValidationError{
				Reason: fmt.Sprintf("asset value for input %q of %s is missing", in.Name, fn.Signature()),
			}
		}
		in.Value = value
	}
	return fn, nil
}

// EncodeDefaultCall 卖方侧参数合成 + 调用编码
//
// Asset -> 绑定的真实值，Replaceable -> 类型默认值，Owner -> addr。
// 角色枚举在所有分支点上都做穷尽匹配，未知角色是硬错误。
func EncodeDefaultCall(fn *types.AnnotatedFunctionABI, addr common.Address) (hexutil.Bytes, error) {
	params := make([]any, len(fn.Inputs))
	for i, in := range fn.Inputs {
		switch in.Kind {
		case types.KindAsset:
			params[i] = in.Value
		case types.KindReplaceable:
			def, err := DefaultValue(in.Type)
			if err != nil {
				return nil, err
			}
			params[i] = def
		case types.KindOwner:
			params[i] = addr
		default:
			return nil, &types.ValidationError{
				Reason: fmt.Sprintf("input %q of %s has unknown kind %d", in.Name, fn.Signature(), int(in.Kind)),
			}
		}
	}
	return EncodeCall(fn, params)
}

// EncodeSell 卖方侧编码
//
// 买方地址槽位（Replaceable）填默认值并在掩码里整体放开，
// 留给之后持有买方地址的一方替换；Owner 槽位填卖方自己的地址。
func EncodeSell(schema *types.Schema, asset types.Asset, addr common.Address) (*types.CallSpec, error) {
	fn, err := bindTransfer(schema, asset)
	if err != nil {
		return nil, err
	}

	calldata, err := EncodeDefaultCall(fn, addr)
	if err != nil {
		return nil, err
	}
	pattern, err := EncodeReplacementPattern(fn, types.KindReplaceable)
	if err != nil {
		return nil, err
	}

	return &types.CallSpec{
		Target:             fn.Target,
		Calldata:           calldata,
		ReplacementPattern: pattern,
	}, nil
}

// EncodeBuy 买方侧编码
//
// 前置条件：转移函数必须恰好有一个 Replaceable 槽位（唯一的收款人槽位），
// 在任何编码工作开始之前校验。买方把自己的地址填进该槽位，
// Owner 槽位填默认值；存在 Owner 槽位时输出 Owner 角色的掩码
// （这些被买方默认填充的字节必须放开才能匹配卖方的真实值），
// 否则掩码为空（0x，所有字节精确匹配）。
func EncodeBuy(schema *types.Schema, asset types.Asset, addr common.Address) (*types.CallSpec, error) {
	fn, err := bindTransfer(schema, asset)
	if err != nil {
		return nil, err
	}

	if n := fn.CountKind(types.KindReplaceable); n != 1 {
		return nil, &types.ValidationError{
			Reason: fmt.Sprintf("function %s has %d replaceable inputs, buy-side encoding requires exactly 1", fn.Signature(), n),
		}
	}

	params := make([]any, len(fn.Inputs))
	for i, in := range fn.Inputs {
		switch in.Kind {
		case types.KindAsset:
			params[i] = in.Value
		case types.KindReplaceable:
			params[i] = addr
		case types.KindOwner:
			def, err := DefaultValue(in.Type)
			if err != nil {
				return nil, err
			}
			params[i] = def
		default:
			return nil, &types.ValidationError{
				Reason: fmt.Sprintf("input %q of %s has unknown kind %d", in.Name, fn.Signature(), int(in.Kind)),
			}
		}
	}

	calldata, err := EncodeCall(fn, params)
	if err != nil {
		return nil, err
	}

	pattern := hexutil.Bytes{}
	if fn.CountKind(types.KindOwner) > 0 {
		pattern, err = EncodeReplacementPattern(fn, types.KindOwner)
		if err != nil {
			return nil, err
		}
	}

	return &types.CallSpec{
		Target:             fn.Target,
		Calldata:           calldata,
		ReplacementPattern: pattern,
	}, nil
}
