package overflow

import (
	"github.com/gostonefire/hashsweep/crt"
	"github.com/gostonefire/hashsweep/internal/model"
)

// Records - Is used to iterate over the keys of a bucket chain one by one.
type Records struct {
	node *model.Node
}

// NewRecords - Returns a pointer to a new Records struct starting at head
func NewRecords(head *model.Node) *Records {

	return &Records{
		node: head,
	}
}

// HasNext - Returns true if there are more keys to be fetched from a call to Next.
func (O *Records) HasNext() bool {
	return O.node != nil
}

// Next - Returns key.
// It returns:
//   - key is the next key in the chain.
//   - err is of type crt.NoRecordFound if there are no more keys when calling this function.
func (O *Records) Next() (key int64, err error) {
	if O.node == nil {
		err = crt.NoRecordFound{}
		return
	}

	key = O.node.Key
	O.node = O.node.Next

	return
}
