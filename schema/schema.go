// Package schema 提供内置资产类型的 Schema 定义和注册表
//
// 每个构造函数返回一个以合约地址为 Target 的函数模板集合。
// 模板中 Asset 槽位的值留空，由编码时的资产对象绑定。
// Schema 的结构合法性校验不在本包职责内。
package schema

import (
	"sort"

	"github.com/ethereum/go-ethereum/common"

	"github.com/MetaFam/wyvern-schemas/pkg/types"
)

// ERC20 同质化代币
//
// transferFrom(address from, address to, uint256 amount)
// from 是所有者槽位，to 是可替换的收款人槽位，amount 是资产固定值
func ERC20(token common.Address) *types.Schema {
	return &types.Schema{
		Name:        "erc20",
		Description: "Fungible token (ERC-20)",
		Functions: map[string]*types.AnnotatedFunctionABI{
			"transferFrom": {
				Name:   "transferFrom",
				Target: token,
				Inputs: []types.AnnotatedInput{
					{Name: "from", Type: "address", Kind: types.KindOwner},
					{Name: "to", Type: "address", Kind: types.KindReplaceable},
					{Name: "amount", Type: "uint256", Kind: types.KindAsset},
				},
			},
		},
	}
}

// ERC721 非同质化代币
//
// transferFrom(address _from, address _to, uint256 _tokenId)
func ERC721(token common.Address) *types.Schema {
	return &types.Schema{
		Name:        "erc721",
		Description: "Non-fungible token (ERC-721)",
		Functions: map[string]*types.AnnotatedFunctionABI{
			"transferFrom": {
				Name:   "transferFrom",
				Target: token,
				Inputs: []types.AnnotatedInput{
					{Name: "_from", Type: "address", Kind: types.KindOwner},
					{Name: "_to", Type: "address", Kind: types.KindReplaceable},
					{Name: "_tokenId", Type: "uint256", Kind: types.KindAsset},
				},
			},
		},
	}
}

// ERC1155 半同质化代币的定宽转移剖面
//
// 标准的 safeTransferFrom 带变长 bytes 参数，无法定宽编码，
// 撮合路径使用 transferFrom(address from, address to, uint256 id) 剖面。
func ERC1155(token common.Address) *types.Schema {
	return &types.Schema{
		Name:        "erc1155",
		Description: "Semi-fungible token (ERC-1155, fixed-width transfer profile)",
		Functions: map[string]*types.AnnotatedFunctionABI{
			"transferFrom": {
				Name:   "transferFrom",
				Target: token,
				Inputs: []types.AnnotatedInput{
					{Name: "from", Type: "address", Kind: types.KindOwner},
					{Name: "to", Type: "address", Kind: types.KindReplaceable},
					{Name: "id", Type: "uint256", Kind: types.KindAsset},
				},
			},
		},
	}
}

// LegacyTransfer 早期 NFT 合约（CryptoKitties 一类）
//
// 只有 transfer(address to, uint256 tokenId)，没有所有者槽位，
// 会走 transfer 回退和买方侧空掩码两条路径
func LegacyTransfer(token common.Address) *types.Schema {
	return &types.Schema{
		Name:        "legacy-transfer",
		Description: "Pre-ERC721 NFT with owner-less transfer",
		Functions: map[string]*types.AnnotatedFunctionABI{
			"transfer": {
				Name:   "transfer",
				Target: token,
				Inputs: []types.AnnotatedInput{
					{Name: "to", Type: "address", Kind: types.KindReplaceable},
					{Name: "tokenId", Type: "uint256", Kind: types.KindAsset},
				},
			},
		},
	}
}

// Constructor Schema 构造函数：合约地址 -> Schema
type Constructor func(token common.Address) *types.Schema

// builtin 内置 Schema 注册表
var builtin = map[string]Constructor{
	"erc20":           ERC20,
	"erc721":          ERC721,
	"erc1155":         ERC1155,
	"legacy-transfer": LegacyTransfer,
}

// Get 按名称查找内置 Schema 构造函数
func Get(name string) (Constructor, bool) {
	ctor, ok := builtin[name]
	return ctor, ok
}

// Names 返回内置 Schema 名称（字典序）
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
