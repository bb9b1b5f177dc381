package entity

import "fmt"

// DocType selects the numbering sequence and prefix of a numbered record.
type DocType string

const (
	DocTypeInvoice DocType = "INVOICE"
	DocTypeBill    DocType = "BILL"
	DocTypePayment DocType = "PAYMENT"
	DocTypeOrder   DocType = "ORDER"
)

func (d DocType) String() string {
	return string(d)
}

func (d DocType) Validate() error {
	switch d {
	case DocTypeInvoice, DocTypeBill, DocTypePayment, DocTypeOrder:
		return nil
	default:
		return fmt.Errorf("%w: unknown document type %q", ErrInvalidArgument, string(d))
	}
}

// Prefix returns the human-readable number prefix, e.g. "INV" for invoices.
func (d DocType) Prefix() string {
	switch d {
	case DocTypeInvoice:
		return "INV"
	case DocTypeBill:
		return "BILL"
	case DocTypePayment:
		return "PAY"
	case DocTypeOrder:
		return "ORD"
	default:
		return "DOC"
	}
}

// FormatNumber renders a sequence value as "{PREFIX}-{6-digit zero-padded}".
func FormatNumber(docType DocType, seq int64) string {
	return fmt.Sprintf("%s-%06d", docType.Prefix(), seq)
}
