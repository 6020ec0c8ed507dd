package qrcode

import (
	"encoding/json"

	"sapphire/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const deviceQRType = "device_registration"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	UDID       string `json:"udid"`
	SecurityID int    `json:"security_id"`
	Type       string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}
	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateDeviceQR encodes the device identity and its registration code as a PNG
func (s *qrcodeService) GenerateDeviceQR(udid string, securityID int) ([]byte, error) {
	jsonData, err := json.Marshal(QRCodeData{
		UDID:       udid,
		SecurityID: securityID,
		Type:       deviceQRType,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseDeviceQR parses QR code data and returns the device identity and code
func (s *qrcodeService) ParseDeviceQR(qrData string) (string, int, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", 0, errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != deviceQRType {
		return "", 0, errors.Errorf("invalid QR code type: %s", data.Type)
	}
	if data.UDID == "" {
		return "", 0, errors.New("QR code carries no device id")
	}

	return data.UDID, data.SecurityID, nil
}
