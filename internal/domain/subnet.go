package domain

// SubnetInfo is the result of a single subnet calculation. It is
// constructed once per invocation and never mutated afterwards.
type SubnetInfo struct {
	NetworkAddress   string `json:"networkAddress"`
	BroadcastAddress string `json:"broadcastAddress"`
	SubnetMask       string `json:"subnetMask"`
	WildcardMask     string `json:"wildcardMask"`
	CIDRNotation     int    `json:"cidrNotation"`
	NetworkClass     string `json:"networkClass,omitempty"`
	HostRange        string `json:"hostRange"`
	TotalHosts       int    `json:"totalHosts"`
	TotalAddresses   int    `json:"totalAddresses"`
}
