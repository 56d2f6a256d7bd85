// SPDX-License-Identifier: MIT

package explorer

import "errors"

var (
	// ErrNilProvider indicates Explore was called without a provider.
	ErrNilProvider = errors.New("explorer: nil provider")

	// ErrProviderShape indicates a provider answer whose shape differs from
	// the residual shape of the selection.
	ErrProviderShape = errors.New("explorer: provider returned unexpected shape")
)
