// Package types 定义编码路径的错误类型
//
// 所有错误对当前编码调用都是终止性的：编码是确定性纯计算，
// 输入不变时重试不会改变结果，调用方应视为"该资产/Schema 不可交易"。
package types

import (
	"errors"
	"fmt"
)

// UnsupportedTypeError 不支持的 ABI 类型
//
// 该类型没有定义默认值（显式不支持数组和变长字节串）
type UnsupportedTypeError struct {
	// Type 原始类型名
	Type string
}

// Error 实现 error 接口
func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("abi type %q has no default value (dynamic-length types are not supported)", e.Type)
}

// IsUnsupportedTypeError 检查错误是否为类型不支持错误
func IsUnsupportedTypeError(err error) (*UnsupportedTypeError, bool) {
	var target *UnsupportedTypeError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}

// ValidationError 结构性前置条件不满足
//
// 在任何编码工作开始之前抛出（如买方侧 Replaceable 槽位数 != 1）
type ValidationError struct {
	// Reason 违反的前置条件描述
	Reason string
}

// Error 实现 error 接口
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s", e.Reason)
}

// IsValidationError 检查错误是否为校验错误
func IsValidationError(err error) (*ValidationError, bool) {
	var target *ValidationError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}

// LookupError Schema 中找不到转移函数
type LookupError struct {
	// Schema 查找失败的 Schema 名
	Schema string
}

// Error 实现 error 接口
func (e *LookupError) Error() string {
	return fmt.Sprintf("schema %q has neither transferFrom nor transfer", e.Schema)
}

// IsLookupError 检查错误是否为查找错误
func IsLookupError(err error) (*LookupError, bool) {
	var target *LookupError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}
