// SPDX-License-Identifier: EPL-2.0

package audsynth

import "errors"

// ErrUnsupportedFile is returned when no decoder is registered for a file's
// extension.
var ErrUnsupportedFile = errors.New("no decoder for file type")
