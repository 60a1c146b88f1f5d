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

//go:build statsview

package statsview

import (
	"fmt"
	"io"
	"sync"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/memdisplay/memdisplay/logger"
)

// Address of the HTTP server.
const Address = "localhost:12600"

const url = "/debug/statsview"

var (
	crit sync.Mutex
	mgr  *statsview.ViewManager
)

// Available returns true if the statsview server can be launched.
func Available() bool {
	return true
}

// Launch the server in a new goroutine. Launching a server that is already
// running does nothing.
func Launch(output io.Writer) {
	crit.Lock()
	defer crit.Unlock()

	if mgr != nil {
		return
	}

	viewer.SetConfiguration(viewer.WithAddr(Address))
	mgr = statsview.New()
	go mgr.Start()

	logger.Logf(logger.Allow, "statsview", "launched on %s", Address)
	fmt.Fprintf(output, "stats server available at %s%s\n", Address, url)
}

// Stop the server if it is running.
func Stop() {
	crit.Lock()
	defer crit.Unlock()

	if mgr == nil {
		return
	}
	mgr.Stop()
	mgr = nil
}
