package domain

// CanAmend reports whether an amendment may be issued for the slip. Only
// slips already Sent or Filed can be amended.
func CanAmend(slip Slip) bool {
	return slip.Status == StatusSent || slip.Status == StatusFiled
}

// CanCancel reports whether the slip can be cancelled: only an Original
// still in Draft. Once generated or sent, an amendment must be issued
// instead.
func CanCancel(slip Slip) bool {
	return slip.SlipType == TypeOriginal && slip.Status == StatusDraft
}
