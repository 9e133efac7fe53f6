// Package shared holds the few names both command and query sides need
// without depending on each other.
package shared

// Token names in the durable per-client token store.
const (
	CartIDTokenName    = "cart_id"
	SelectionTokenName = "selected_merchandise"
)
