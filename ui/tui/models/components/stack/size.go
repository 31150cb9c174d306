// Copyright (c) 2026 Bookmycook Team
// Bookmycook - sign-in flow
// This source code is licensed under the MIT license found in the LICENSE file.
package stack

import (
	"cmp"
	"math"
	"slices"

	"github.com/bookmycook/bookmycook/ui/tui/util"
	"github.com/bookmycook/bookmycook/util/slicest"
	tea "github.com/charmbracelet/bubbletea"
)

// SizeConfig decides how much of the stack's main axis an item gets. Lower
// priorities are served first.
type SizeConfig interface {
	Priority() int
	Calculate(model util.Model, remaining int, total int) int
}
type staticSize struct {
	Size int
}
type variableSize struct {
	Weight      int
	totalWeight int
}

func StaticSize(size int) SizeConfig     { return &staticSize{Size: size} }
func VariableSize(weight int) SizeConfig { return &variableSize{Weight: weight} }

func (sc *staticSize) Priority() int {
	return 0
}
func (sc *variableSize) Priority() int {
	return math.MaxInt
}

func (sc *staticSize) Calculate(_ util.Model, _ int, _ int) int {
	return sc.Size
}
func (sc *variableSize) Calculate(_ util.Model, remaining int, _ int) int {
	if sc.totalWeight == 0 {
		return remaining
	}
	// remaining * (Weight / totalWeight) without float rounding
	return (remaining * sc.Weight) / sc.totalWeight
}

func (s *Model) calculateItemSizes() {
	var total int
	if s.Orientation == Horizontal {
		total = s.size.Width
	} else {
		total = s.size.Height
	}

	// track remaining size
	remaining := total - (s.Gap * (len(s.items) - 1))

	// create pointer slice for later mutation
	sortedItems := make([]*Item, len(s.items))
	for i := range s.items {
		sortedItems[i] = &s.items[i]
	}

	// sorts item pointers (inplace slice mutation)
	slices.SortFunc(sortedItems, func(item1, item2 *Item) int {
		return cmp.Compare(item1.SizeConfig.Priority(), item2.SizeConfig.Priority())
	})

	// get total weight from variable SizeConfigs
	totalWeight := slicest.Reduce(s.items, func(item Item, acc int) int {
		if sizeConfigV, ok := item.SizeConfig.(*variableSize); ok {
			return acc + sizeConfigV.Weight
		}
		return acc
	})

	// calculate sizes
	for _, item := range sortedItems {
		sizeConfigV, ok := item.SizeConfig.(*variableSize)
		if ok {
			sizeConfigV.totalWeight = totalWeight
		}

		size := min(item.SizeConfig.Calculate(*item.Model, remaining, total), remaining)

		if ok {
			totalWeight -= sizeConfigV.Weight
		}

		remaining -= size
		item.oldSize = item.size
		item.size = size
	}
}

func (s *Model) updateResizedItems(force bool) []tea.Cmd {
	var cmds []tea.Cmd
	for _, item := range s.items {
		if force || item.size != item.oldSize {
			var msg tea.WindowSizeMsg
			if s.Orientation == Horizontal {
				msg.Width = item.size
				msg.Height = s.size.Height
			} else {
				msg.Width = s.size.Width
				msg.Height = item.size
			}

			cmds = append(cmds, (*item.Model).Update(msg))
		}
	}
	return cmds
}
