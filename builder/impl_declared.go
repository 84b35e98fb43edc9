// SPDX-License-Identifier: MIT
// Package: labyrinth/builder
//
// impl_declared.go — implementation of Declared(cells, passages) constructor.
//
// Contract:
//   • Adds cells in the given order (labels merge with earlier constructors).
//   • Adds every passage in the given order; unknown endpoints yield
//     ErrConstructFailed, times < 1 yield ErrInvalidPassageTime.
//   • Time maze.Impassable is recorded as an explicit impassable passage.
//   • Ignores cfg.idFn, cfg.weightFn and cfg.oneWay: everything is explicit.
//
// Complexity:
//   • Time: O(len(cells) + len(passages)).

package builder

// Passage is one explicit directed passage between labeled cells.
type Passage struct {
	From, To string
	Time     int
}

// Declared returns a Constructor that lays out exactly the listed cells and
// passages. It is the bridge for hand-written layouts such as maze files.
func Declared(cells []string, passages []Passage) Constructor {
	return func(p *plan, _ builderConfig) error {
		for _, label := range cells {
			p.addCell(label)
		}
		for _, ps := range passages {
			if err := p.addPassage(MethodDeclared, ps.From, ps.To, ps.Time); err != nil {
				return err
			}
		}

		return nil
	}
}
