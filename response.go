package invoiceledger

import (
	"github.com/xraph/invoiceledger/id"
	"github.com/xraph/invoiceledger/types"
)

// Attribute is a key/value pair describing the outcome of a command.
type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Transfer is an outgoing value-transfer instruction: a directive for the
// host to move the named funds from the ledger's control to ToAddress. It
// takes effect only if the host applies the surrounding operation; if the
// operation is rejected, the instruction is discarded along with every
// state write of that operation.
type Transfer struct {
	Ref       id.ID        `json:"ref"`
	ToAddress string       `json:"to_address"`
	Amount    []types.Coin `json:"amount"`
}

// Response is the confirmation returned by a successful command. It carries
// descriptive attributes and any value-transfer instructions the command
// issued, to be applied atomically with the command's state writes.
type Response struct {
	Attributes []Attribute `json:"attributes"`
	Transfers  []Transfer  `json:"transfers,omitempty"`
}

// NewResponse creates an empty Response.
func NewResponse() *Response {
	return &Response{}
}

// AddAttribute appends a key/value attribute and returns the Response for
// chaining.
func (r *Response) AddAttribute(key, value string) *Response {
	r.Attributes = append(r.Attributes, Attribute{Key: key, Value: value})
	return r
}

// AddTransfer appends a value-transfer instruction and returns the Response
// for chaining.
func (r *Response) AddTransfer(t Transfer) *Response {
	r.Transfers = append(r.Transfers, t)
	return r
}

// Attribute returns the value of the named attribute and whether it is set.
func (r *Response) Attribute(key string) (string, bool) {
	for _, a := range r.Attributes {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}
