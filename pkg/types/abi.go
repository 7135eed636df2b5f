// Package types 定义订单撮合调用编码的共享数据模型
//
// 核心概念：
// - FunctionInputKind：输入槽位的角色标注（Asset/Replaceable/Owner）
// - AnnotatedFunctionABI：带角色标注的函数 ABI 描述
// - Schema：资产类型到命名函数的映射
// - CallSpec：编码结果（target + calldata + replacementPattern）
package types

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// FunctionInputKind 输入槽位角色
//
// 角色决定编码时槽位取值与掩码归属：
// - Asset：固定值，由资产对象提供，双方必须字节一致
// - Replaceable：对手方地址槽位，掩码放开后允许替换
// - Owner：一方用真实地址填充、另一方用默认值填充并放开掩码的槽位
type FunctionInputKind int

const (
	// KindAsset 资产固定值槽位
	KindAsset FunctionInputKind = iota

	// KindReplaceable 可替换槽位（对手方地址）
	KindReplaceable

	// KindOwner 所有者槽位
	KindOwner
)

// String 实现 Stringer 接口
func (k FunctionInputKind) String() string {
	switch k {
	case KindAsset:
		return "asset"
	case KindReplaceable:
		return "replaceable"
	case KindOwner:
		return "owner"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// MarshalJSON 序列化为角色名字符串
func (k FunctionInputKind) MarshalJSON() ([]byte, error) {
	switch k {
	case KindAsset, KindReplaceable, KindOwner:
		return json.Marshal(k.String())
	default:
		return nil, &ValidationError{Reason: fmt.Sprintf("cannot marshal unknown input kind %d", int(k))}
	}
}

// UnmarshalJSON 从角色名字符串反序列化
func (k *FunctionInputKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "asset":
		*k = KindAsset
	case "replaceable":
		*k = KindReplaceable
	case "owner":
		*k = KindOwner
	default:
		return &ValidationError{Reason: fmt.Sprintf("unknown input kind %q", s)}
	}
	return nil
}

// AnnotatedInput 带角色标注的函数输入
type AnnotatedInput struct {
	// Name 参数名（绑定资产值时作为键）
	Name string `json:"name"`

	// Type 基本 ABI 类型名（address/bytes32/bool/int/uint 族）
	Type string `json:"type"`

	// Kind 槽位角色
	Kind FunctionInputKind `json:"kind"`

	// Value Asset 槽位的具体值，其他角色为 nil
	Value any `json:"value,omitempty"`
}

// AnnotatedFunctionABI 带角色标注的函数 ABI
//
// 不变量：Inputs 的顺序有编码意义，交易双方必须使用同一顺序
type AnnotatedFunctionABI struct {
	// Name 函数名
	Name string `json:"name"`

	// Target 合约地址（calldata 的调用目标）
	Target common.Address `json:"target"`

	// Inputs 有序输入列表
	Inputs []AnnotatedInput `json:"inputs"`
}

// Signature 返回规范签名，如 "transfer(address,uint256)"
func (f *AnnotatedFunctionABI) Signature() string {
	typeNames := make([]string, len(f.Inputs))
	for i, in := range f.Inputs {
		typeNames[i] = in.Type
	}
	return fmt.Sprintf("%s(%s)", f.Name, strings.Join(typeNames, ","))
}

// CountKind 统计指定角色的输入个数
func (f *AnnotatedFunctionABI) CountKind(kind FunctionInputKind) int {
	n := 0
	for _, in := range f.Inputs {
		if in.Kind == kind {
			n++
		}
	}
	return n
}

// Clone 深拷贝，绑定资产值时使用（模板本身保持不可变）
func (f *AnnotatedFunctionABI) Clone() *AnnotatedFunctionABI {
	inputs := make([]AnnotatedInput, len(f.Inputs))
	copy(inputs, f.Inputs)
	return &AnnotatedFunctionABI{
		Name:   f.Name,
		Target: f.Target,
		Inputs: inputs,
	}
}

// Schema 资产类型描述
//
// 将一种资产类型映射到若干命名函数模板。
// 编码路径只会查找 transferFrom（优先）和 transfer。
type Schema struct {
	// Name 资产类型名（如 "erc20"、"erc721"）
	Name string `json:"name"`

	// Description 资产类型说明
	Description string `json:"description,omitempty"`

	// Functions 函数名到 ABI 模板的映射
	Functions map[string]*AnnotatedFunctionABI `json:"functions"`
}

// TransferFunction 解析转移函数
//
// transferFrom 优先于 transfer，两者都缺失时返回 LookupError
func (s *Schema) TransferFunction() (*AnnotatedFunctionABI, error) {
	if fn, ok := s.Functions["transferFrom"]; ok {
		return fn, nil
	}
	if fn, ok := s.Functions["transfer"]; ok {
		return fn, nil
	}
	return nil, &LookupError{Schema: s.Name}
}

// Asset 资产值绑定：输入名 -> Asset 槽位具体值
type Asset map[string]any

// CallSpec 编码结果
//
// 不变量：Calldata 与 ReplacementPattern 字节长度相等；
// 唯一例外是买方侧无 Owner 槽位时 ReplacementPattern 为空（0x，全字节精确匹配）。
// 链上撮合方的比较语义：(callA XOR callB) AND NOT(mask) == 0，掩码 1 = 忽略该字节。
type CallSpec struct {
	// Target 调用目标合约
	Target common.Address `json:"target"`

	// Calldata 完整调用字节（selector + 参数编码），0x 前缀小写十六进制
	Calldata hexutil.Bytes `json:"calldata"`

	// ReplacementPattern 字节粒度替换掩码
	ReplacementPattern hexutil.Bytes `json:"replacementPattern"`
}
