package encoding

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/MetaFam/wyvern-schemas/pkg/bitmask"
	"github.com/MetaFam/wyvern-schemas/pkg/types"
)

// slotWidth 计算单个输入的编码字节宽度
//
// 用与 EncodeCall 相同的编解码器单独打包该输入的默认值，
// 保证掩码的槽位宽度与真实编码永远一致。
func slotWidth(in types.AnnotatedInput) (int, error) {
	def, err := DefaultValue(in.Type)
	if err != nil {
		return 0, err
	}
	typ, err := abi.NewType(in.Type, "", nil)
	if err != nil {
		return 0, &types.UnsupportedTypeError{Type: in.Type}
	}
	packed, err := abi.Arguments{{Type: typ}}.Pack(def)
	if err != nil {
		return 0, &types.UnsupportedTypeError{Type: in.Type}
	}
	return len(packed), nil
}

// EncodeReplacementPattern 构建字节粒度替换掩码
//
// 与 calldata 等长：selector 的 4 字节恒为 0，
// 角色等于 kind 的输入其整个 32 字节槽位标记为可替换（0xff），其余为 0。
// 没有任何输入命中 kind 时得到全零掩码，等价于"所有字节精确匹配"。
func EncodeReplacementPattern(fn *types.AnnotatedFunctionABI, kind types.FunctionInputKind) (hexutil.Bytes, error) {
	widths := make([]int, len(fn.Inputs))
	total := SelectorLength
	for i, in := range fn.Inputs {
		w, err := slotWidth(in)
		if err != nil {
			return nil, err
		}
		widths[i] = w
		total += w
	}

	mask := bitmask.New(total)
	offset := SelectorLength
	for i, in := range fn.Inputs {
		if in.Kind == kind {
			mask.MarkRange(offset, offset+widths[i])
		}
		offset += widths[i]
	}
	return mask.Expanded(), nil
}
