// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// DappDeployment identifies where and when the application contract was
// deployed. It is produced by decoding a deployment file such as
//
//	{"address": "0x…", "blockHash": "0x…"}
//
// with [ReadJSONFile]. Both keys are required.
type DappDeployment struct {
	DappAddress         common.Address `json:"address"`
	DappDeployBlockHash common.Hash    `json:"blockHash"`
}

// UnmarshalJSON decodes the wire document, rejecting documents where either
// key is absent or null. Hex values must be 0x-prefixed and exactly 20
// (address) or 32 (block hash) bytes long.
func (d *DappDeployment) UnmarshalJSON(b []byte) error {
	var wire struct {
		Address   *common.Address `json:"address"`
		BlockHash *common.Hash    `json:"blockHash"`
	}
	if err := json.Unmarshal(b, &wire); err != nil {
		return err
	}

	if wire.Address == nil {
		return fmt.Errorf("%w: address", ErrMissingField)
	}
	if wire.BlockHash == nil {
		return fmt.Errorf("%w: blockHash", ErrMissingField)
	}

	d.DappAddress = *wire.Address
	d.DappDeployBlockHash = *wire.BlockHash

	return nil
}

// ReadDappDeployment loads the deployment file at path.
func ReadDappDeployment(path string) (DappDeployment, error) {
	return ReadJSONFile[DappDeployment](path)
}
