package encoding

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/MetaFam/wyvern-schemas/pkg/types"
)

// SelectorLength 方法选择器字节数
const SelectorLength = 4

// arguments 将标注 ABI 的输入列表转换为编解码器参数
//
// 只接受定宽基本类型；动态长度类型会让掩码长度相对真实编码不再确定，
// 因此在此处整体拒绝。
func arguments(fn *types.AnnotatedFunctionABI) (abi.Arguments, error) {
	args := make(abi.Arguments, 0, len(fn.Inputs))
	for _, in := range fn.Inputs {
		typ, err := abi.NewType(in.Type, "", nil)
		if err != nil {
			return nil, &types.UnsupportedTypeError{Type: in.Type}
		}
		switch typ.T {
		case abi.AddressTy, abi.BoolTy, abi.IntTy, abi.UintTy, abi.FixedBytesTy:
			// 定宽基本类型，每个占一个 32 字节槽位
		default:
			return nil, &types.UnsupportedTypeError{Type: in.Type}
		}
		args = append(args, abi.Argument{Name: in.Name, Type: typ})
	}
	return args, nil
}

// EncodeCall 编码完整调用字节
//
// selector 取规范签名 Keccak-256 哈希的前 4 字节，
// 参数按 ABI 规则定宽编码（每个基本类型对齐到 32 字节槽位）。
// 输出长度恒为 4 + 32*len(inputs)。纯函数，相同输入产生逐字节相同的输出。
func EncodeCall(fn *types.AnnotatedFunctionABI, params []any) (hexutil.Bytes, error) {
	if len(params) != len(fn.Inputs) {
		return nil, &types.ValidationError{
			Reason: fmt.Sprintf("function %s expects %d parameters, got %d", fn.Signature(), len(fn.Inputs), len(params)),
		}
	}
	args, err := arguments(fn)
	if err != nil {
		return nil, err
	}

	method := abi.NewMethod(fn.Name, fn.Name, abi.Function, "", false, false, args, nil)
	packed, err := args.Pack(params...)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", fn.Signature(), err)
	}

	calldata := make([]byte, 0, SelectorLength+len(packed))
	calldata = append(calldata, method.ID...)
	calldata = append(calldata, packed...)
	return calldata, nil
}
