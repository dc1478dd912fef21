// SPDX-License-Identifier: MIT

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/isolator/core"
)

// PlatonicSolid returns a Constructor for the named solid's vertex-edge
// graph. With withCenter a hub vertex idFn(order) is joined to every shell
// vertex.
func PlatonicSolid(name PlatonicName, withCenter bool) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		shell, ok := platonicShells[name]
		if !ok {
			return errors.Wrapf(ErrOptionViolation, "%s: unknown solid %q", MethodPlatonicSolid, name)
		}
		if err := addVertices(g, cfg, MethodPlatonicSolid, shell.order); err != nil {
			return err
		}
		for _, ch := range shell.edges() {
			if err := addEdge(g, cfg, MethodPlatonicSolid, ch.U, ch.V); err != nil {
				return err
			}
		}
		if !withCenter {
			return nil
		}
		for i := 0; i < shell.order; i++ {
			if err := addEdge(g, cfg, MethodPlatonicSolid, shell.order, i); err != nil {
				return err
			}
		}

		return nil
	}
}
