package service

// QRCodeService renders and reads the registration code shown for a device.
// The payload binds the device UDID to its six digit security id.
type QRCodeService interface {
	GenerateDeviceQR(udid string, securityID int) ([]byte, error)
	ParseDeviceQR(qrData string) (udid string, securityID int, err error)
}
