package attendance

import (
	"fmt"
	"io"
)

// Operator-facing messages.
const (
	MsgDateRequired     = "Παρακαλώ επιλέξτε ημερομηνία"
	MsgBoatRequired     = "Παρακαλώ επιλέξτε σκάφος, για όλους τους παρόντες"
	MsgSaved            = "Η αποθήκευση ολοκληρώθηκε!"
	MsgConnectionFailed = "Αποτυχία σύνδεσης με τον διακομιστή"
	MsgSaveFailed       = "Αποτυχία αποθήκευσης της παρουσίας"
)

// Notifier shows a blocking alert to the operator.
type Notifier interface {
	Alert(message string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(message string)

func (f NotifierFunc) Alert(message string) { f(message) }

// WriterNotifier prints alerts as lines on W.
type WriterNotifier struct {
	W io.Writer
}

func (n WriterNotifier) Alert(message string) {
	fmt.Fprintln(n.W, message)
}
