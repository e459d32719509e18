// Copyright 2024 The Stratos Authors.
//
// Use of this software is governed by the Apache License, Version 2.0
// included in the /LICENSE file.

package ipnet

import (
	"github.com/stratosdb/stratos/pkg/sql/extension"
	"github.com/stratosdb/stratos/pkg/sql/sem/tree"
	"github.com/stratosdb/stratos/pkg/sql/typeext"
)

// RegisterTypes registers the IPADDRESS and IPPREFIX custom types.
func RegisterTypes(reg *typeext.Registry) {
	reg.Register("ipaddress", ipAddressFactory{})
	reg.Register("ipprefix", ipPrefixFactory{})
}

// Register populates the given registries with everything this
// extension provides.
func Register(typeReg *typeext.Registry, funcReg *tree.FunctionRegistry, prefix string) {
	RegisterTypes(typeReg)
	RegisterFunctions(funcReg, prefix)
}

// Registry is the extension entry point. It carries the fixed exported
// name the loader resolves, takes no arguments, and registers into the
// process-wide registries.
func Registry() {
	Register(typeext.Default, tree.FunDefs, "" /* prefix */)
}

func init() {
	extension.RegisterBuiltin("ipnet", Registry)
}
