// Copyright (c) 2026 Bookmycook Team
// Bookmycook - sign-in flow
// This source code is licensed under the MIT license found in the LICENSE file.
package header

import (
	"github.com/bookmycook/bookmycook/ui/tui/models/components/stack"
	"github.com/bookmycook/bookmycook/ui/tui/util"
)

var SizeConfig = &sizeConfig{}

type sizeConfig struct{}

var _ stack.SizeConfig = (*sizeConfig)(nil)

func (s *sizeConfig) Priority() int { return 10 }

// The header gives way on very short terminals.
func (s *sizeConfig) Calculate(_ util.Model, _ int, total int) int {
	if total >= 12 {
		return 2
	}
	return 0
}
