package encoding

import (
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MetaFam/wyvern-schemas/pkg/types"
)

// defaultParams 为 ABI 的每个输入生成默认值参数
func defaultParams(t *testing.T, fn *types.AnnotatedFunctionABI) []any {
	t.Helper()
	params := make([]any, len(fn.Inputs))
	for i, in := range fn.Inputs {
		def, err := DefaultValue(in.Type)
		require.NoError(t, err)
		params[i] = def
	}
	return params
}

// TestEncodeReplacementPattern_ScenarioMask transfer 场景的掩码只放开 to 槽位
func TestEncodeReplacementPattern_ScenarioMask(t *testing.T) {
	fn := transferABI(common.Address{})
	pattern, err := EncodeReplacementPattern(fn, types.KindReplaceable)
	require.NoError(t, err)

	want := "0x" + "00000000" + strings.Repeat("ff", 32) + strings.Repeat("00", 32)
	assert.Equal(t, want, hexutil.Encode(pattern))
}

// TestEncodeReplacementPattern_LengthMatchesCalldata 掩码与 calldata 字节长度恒等
func TestEncodeReplacementPattern_LengthMatchesCalldata(t *testing.T) {
	abis := []*types.AnnotatedFunctionABI{
		transferABI(common.Address{}),
		{
			Name: "transferFrom",
			Inputs: []types.AnnotatedInput{
				{Name: "from", Type: "address", Kind: types.KindOwner},
				{Name: "to", Type: "address", Kind: types.KindReplaceable},
				{Name: "amount", Type: "uint256", Kind: types.KindAsset},
			},
		},
		{
			Name: "settle",
			Inputs: []types.AnnotatedInput{
				{Name: "id", Type: "bytes32", Kind: types.KindAsset},
				{Name: "flag", Type: "bool", Kind: types.KindAsset},
				{Name: "who", Type: "address", Kind: types.KindReplaceable},
				{Name: "nonce", Type: "uint64", Kind: types.KindOwner},
			},
		},
		{Name: "pause"},
	}

	for _, fn := range abis {
		t.Run(fn.Signature(), func(t *testing.T) {
			calldata, err := EncodeCall(fn, defaultParams(t, fn))
			require.NoError(t, err)

			for _, kind := range []types.FunctionInputKind{types.KindAsset, types.KindReplaceable, types.KindOwner} {
				pattern, err := EncodeReplacementPattern(fn, kind)
				require.NoError(t, err)
				assert.Equal(t, len(calldata), len(pattern),
					"kind=%s 掩码长度必须与 calldata 相同", kind)
			}
		})
	}
}

// TestEncodeReplacementPattern_NoMatchingKind 没有命中角色时得到全零掩码
func TestEncodeReplacementPattern_NoMatchingKind(t *testing.T) {
	fn := transferABI(common.Address{})
	pattern, err := EncodeReplacementPattern(fn, types.KindOwner)
	require.NoError(t, err)

	assert.Len(t, pattern, 68)
	for i, b := range pattern {
		assert.Zero(t, b, "byte %d", i)
	}
}

// TestEncodeReplacementPattern_SelectorAlwaysZero 前 4 字节（selector）恒为 0
func TestEncodeReplacementPattern_SelectorAlwaysZero(t *testing.T) {
	fn := &types.AnnotatedFunctionABI{
		Name: "give",
		Inputs: []types.AnnotatedInput{
			{Name: "to", Type: "address", Kind: types.KindReplaceable},
		},
	}
	pattern, err := EncodeReplacementPattern(fn, types.KindReplaceable)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 0}, []byte(pattern[:4]))
	assert.Equal(t, strings.Repeat("ff", 32), hexutil.Encode(pattern[4:])[2:])
}

// TestEncodeReplacementPattern_UnsupportedTypePropagates 任一输入类型不支持则整体失败
func TestEncodeReplacementPattern_UnsupportedTypePropagates(t *testing.T) {
	fn := &types.AnnotatedFunctionABI{
		Name: "give",
		Inputs: []types.AnnotatedInput{
			{Name: "to", Type: "address", Kind: types.KindReplaceable},
			{Name: "data", Type: "bytes", Kind: types.KindAsset},
		},
	}
	_, err := EncodeReplacementPattern(fn, types.KindReplaceable)
	require.Error(t, err)
	typeErr, ok := types.IsUnsupportedTypeError(err)
	require.True(t, ok)
	assert.Equal(t, "bytes", typeErr.Type)
}
