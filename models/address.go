package models

// AddressDescriptor is the protocol/schema/format triad the record store
// requires to route and validate a record's content.
type AddressDescriptor struct {
	ProtocolID   string `json:"protocol"`
	ProtocolPath string `json:"protocol_path"`
	SchemaURI    string `json:"schema"`
	DataFormat   string `json:"data_format"`
}

// ProtocolDefinition is the document a store installs before it accepts
// records addressed by the protocol.
type ProtocolDefinition struct {
	Protocol  string                  `json:"protocol"`
	Published bool                    `json:"published"`
	Types     map[string]ProtocolType `json:"types"`
	Structure map[string]ProtocolRule `json:"structure"`
}

// ProtocolType binds a protocol path to a schema and the formats accepted
// for it.
type ProtocolType struct {
	Schema      string   `json:"schema"`
	DataFormats []string `json:"dataFormats"`
}

// ProtocolRule lists who may act on records written under a path.
type ProtocolRule struct {
	Actions []ProtocolAction `json:"$actions,omitempty"`
}

// ProtocolAction grants a party ("anyone", "recipient", "author") an action
// ("read", "write") on a path.
type ProtocolAction struct {
	Who string `json:"who"`
	Can string `json:"can"`
}
