package legacy

// ResolveNetworkID picks the network a built command targets: the explicit
// --networkId value when one was given, the caller's ambient network otherwise.
func ResolveNetworkID(explicit, ambient string) string {
	if explicit != "" {
		return explicit
	}
	return ambient
}
