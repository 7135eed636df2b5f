package encoding

import (
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MetaFam/wyvern-schemas/pkg/types"
)

// supportedTypes 默认值生成器支持的全部基本类型
var supportedTypes = []string{
	"address", "bytes32", "bool",
	"uint8", "uint16", "uint32", "uint64",
	"int8", "int16", "int32", "int64",
	"int", "uint", "int128", "uint128", "int256", "uint256",
}

// TestDefaultValue_CanonicalWidth 每个支持类型的默认值编码宽度都等于规范的 32 字节槽位
func TestDefaultValue_CanonicalWidth(t *testing.T) {
	for _, abiType := range supportedTypes {
		t.Run(abiType, func(t *testing.T) {
			def, err := DefaultValue(abiType)
			require.NoError(t, err)

			typ, err := abi.NewType(abiType, "", nil)
			require.NoError(t, err)
			packed, err := abi.Arguments{{Type: typ}}.Pack(def)
			require.NoError(t, err, "默认值必须能被编解码器直接打包")
			assert.Len(t, packed, 32, "基本类型占一个 32 字节槽位")
		})
	}
}

// TestDefaultValue_Deterministic 默认值生成是确定性的
func TestDefaultValue_Deterministic(t *testing.T) {
	for _, abiType := range supportedTypes {
		first, err := DefaultValue(abiType)
		require.NoError(t, err)
		second, err := DefaultValue(abiType)
		require.NoError(t, err)
		assert.Equal(t, first, second, "type %s", abiType)
	}
}

// TestDefaultValue_NonZeroAddress 地址占位值是 20 字节 0x11，不是零地址
func TestDefaultValue_NonZeroAddress(t *testing.T) {
	def, err := DefaultValue("address")
	require.NoError(t, err)
	assert.Equal(t, DefaultAddress, def)
	assert.Equal(t, "0x1111111111111111111111111111111111111111", DefaultAddress.Hex())
}

// TestDefaultValue_Unsupported 不支持的类型返回 UnsupportedTypeError
func TestDefaultValue_Unsupported(t *testing.T) {
	unsupported := []string{
		"string", "bytes", "bytes16",
		"address[]", "uint256[]", "uint256[2]",
		"function", "fixed", "",
	}
	for _, abiType := range unsupported {
		t.Run("拒绝 "+abiType, func(t *testing.T) {
			_, err := DefaultValue(abiType)
			require.Error(t, err)
			typeErr, ok := types.IsUnsupportedTypeError(err)
			require.True(t, ok, "expected UnsupportedTypeError, got %T", err)
			assert.Equal(t, abiType, typeErr.Type)
		})
	}
}
