// Package encoding 实现订单撮合的调用编码核心算法
//
// 两个叶子算法：
// - DefaultValue：基本 ABI 类型的规范占位值
// - EncodeCall：selector + 定宽参数编码（委托 go-ethereum 的 ABI 编解码器）
//
// 两个组合算法：
// - EncodeReplacementPattern：字节粒度替换掩码
// - EncodeSell / EncodeBuy：卖方/买方编排
//
// 所有操作都是无副作用的纯函数，可以被任意多个调用方并发调用。
package encoding

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/MetaFam/wyvern-schemas/pkg/types"
)

// DefaultAddress 地址类型的规范占位值（20 字节 0x11）
//
// 不用零地址：部分 transfer 实现会拒绝零地址，
// 真实值未知时用一个无害的非零占位地址代替。
var DefaultAddress = common.HexToAddress("0x1111111111111111111111111111111111111111")

// DefaultValue 返回基本 ABI 类型的规范占位值
//
// 返回值的 Go 表示与 go-ethereum ABI 编解码器对该类型的要求严格一致：
// 宽度 <= 64 位的整数用原生类型，更宽的整数以及无位宽的 int/uint 用 *big.Int。
// 不支持的类型（数组、变长字节串等）返回 UnsupportedTypeError。
func DefaultValue(abiType string) (any, error) {
	switch abiType {
	case "address":
		return DefaultAddress, nil
	case "bytes32":
		return [32]byte{}, nil
	case "bool":
		return false, nil
	case "uint8":
		return uint8(0), nil
	case "uint16":
		return uint16(0), nil
	case "uint32":
		return uint32(0), nil
	case "uint64":
		return uint64(0), nil
	case "int8":
		return int8(0), nil
	case "int16":
		return int16(0), nil
	case "int32":
		return int32(0), nil
	case "int64":
		return int64(0), nil
	case "int", "uint", "int128", "uint128", "int256", "uint256":
		return new(big.Int), nil
	default:
		return nil, &types.UnsupportedTypeError{Type: abiType}
	}
}
