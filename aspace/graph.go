// This file is part of memdisplay.
//
// memdisplay is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// memdisplay is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with memdisplay.  If not, see <https://www.gnu.org/licenses/>.

package aspace

import (
	"fmt"
	"io"

	"github.com/bradleyjkemp/memviz"
)

// the registry holds functions which are of no interest in a graph. the graph
// is made from this copy of the registry instead
type graphSpace struct {
	Name  string
	Token string
	Next  *graphSpace
}

type graphRegistry struct {
	Spaces      *graphSpace
	Translators int
	Symbols     bool
}

// Graph writes a graphviz description of the registry to w.
func (r *Registry) Graph(w io.Writer) {
	g := &graphRegistry{
		Symbols: r.Symbols != nil,
	}

	tail := &g.Spaces
	for h := r.handlers; h != nil; h = h.next {
		s := &graphSpace{Name: h.name}
		if h.token != nil {
			s.Token = fmt.Sprintf("%v", h.token)
		}
		*tail = s
		tail = &s.Next
	}

	for t := r.translators; t != nil; t = t.next {
		g.Translators++
	}

	memviz.Map(w, g)
}
