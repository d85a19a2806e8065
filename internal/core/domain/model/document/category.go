package document

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Category classifies an uploaded document.
type Category string

const (
	CategoryInvoice  Category = "invoice"
	CategoryWaybill  Category = "waybill"
	CategoryContract Category = "contract"
	CategoryReport   Category = "report"
	CategoryOther    Category = "other"
)

func (c Category) Validate() error {
	switch c {
	case CategoryInvoice, CategoryWaybill, CategoryContract, CategoryReport, CategoryOther:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("category", fmt.Errorf("%q is not a document category", string(c)))
	}
}
