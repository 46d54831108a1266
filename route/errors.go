// SPDX-License-Identifier: EPL-2.0

package route

import "errors"

var (
	// ErrDuplicatePath reports a path name defined twice in one table.
	ErrDuplicatePath = errors.New("path name already exists")
	// ErrDuplicateControl reports two settings targeting the same control
	// within one flattened path.
	ErrDuplicateControl = errors.New("duplicate control in path")
	// ErrUnknownPath reports a reference to, or apply of, a path name that
	// does not exist (yet). Forward references during load hit this too.
	ErrUnknownPath = errors.New("unknown path")
	// ErrUnresolvedControl reports a configuration naming a control the
	// hardware does not expose.
	ErrUnresolvedControl = errors.New("control not found on mixer")
	// ErrInvalidLabel reports an enum value string that matches none of the
	// control's labels, or a missing value on an enumerated control.
	ErrInvalidLabel = errors.New("no matching enum label")
	// ErrWrongType reports an operation valid only for enumerated controls
	// applied to some other control type.
	ErrWrongType = errors.New("control has wrong type")
)
