// SPDX-License-Identifier: MIT

package minimize

import "errors"

// ErrNilConstraint is returned by Run when no constraint is supplied.
var ErrNilConstraint = errors.New("minimize: nil constraint")
