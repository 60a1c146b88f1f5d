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

// Package probe is the fault guarded accessor. It reads, writes, fills,
// copies and compares raw memory at arbitrary addresses, converting bus
// errors into ordinary errors with the barrier package.
//
// Memory is reached through the Bus interface. Direct is the Bus that
// dereferences the address. Other implementations are useful in tests.
//
// Every operation runs inside exactly one fault barrier. There is no
// rollback: words written before a fault stay written.
package probe
