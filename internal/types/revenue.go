package types

// RecognitionMode selects how booking events are attributed to calendar
// months in a revenue report.
//
// Cash-basis books revenue into the month the invoice/storno/cancellation
// document was actually dated. Accrual-basis credits every month a
// subscription was contractually active and debits the month it stopped.
type RecognitionMode string

const (
	RecognitionModeCash    RecognitionMode = "cash"
	RecognitionModeAccrual RecognitionMode = "accrual"
)

func (m RecognitionMode) Validate() bool {
	return m == RecognitionModeCash || m == RecognitionModeAccrual
}
