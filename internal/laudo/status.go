package laudo

import "github.com/laudohub/laudohub-api/internal/domain/entity"

// DecideStatus computes the initial report status. The requiresPayment flag is
// authoritative: a zero price with the flag set still yields pending_payment.
// The only later transition, pending_payment to ready, is triggered by payment
// confirmation outside this package.
func DecideStatus(requiresPayment bool) entity.ReportStatus {
	if requiresPayment {
		return entity.ReportStatusPendingPayment
	}
	return entity.ReportStatusReady
}
