package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// uploadDir is where generated PDFs are kept locally; served under /uploads.
func uploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "./uploads"
}

// SaveInvoicePDF stores the rendered PDF at its derived path and returns the
// URL recorded on the invoice. When R2 is configured the public object URL
// wins; otherwise the local /uploads path is used.
func SaveInvoicePDF(pdfBytes []byte, fileName string) (string, error) {
	dir := uploadDir()
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, fileName), pdfBytes, 0644); err != nil {
		return "", fmt.Errorf("failed to save PDF: %v", err)
	}

	if R2Configured() {
		fileURL, err := UploadToR2(pdfBytes, fileName)
		if err != nil {
			return "", err
		}
		return fileURL, nil
	}
	return "/uploads/" + fileName, nil
}

// InvoicePDFExists checks the derived path for a previously generated PDF.
func InvoicePDFExists(fileName string) bool {
	if _, err := os.Stat(filepath.Join(uploadDir(), fileName)); err == nil {
		return true
	}
	if R2Configured() {
		ok, err := ExistsInR2(fileName)
		if err == nil {
			return ok
		}
	}
	return false
}

// DeleteInvoicePDF removes the stored artifact for a deleted invoice. Best
// effort: a missing file is not an error, storage failures are logged only.
func DeleteInvoicePDF(fileName string) {
	path := filepath.Join(uploadDir(), fileName)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		GetLogger().Warn("failed to remove local PDF", zap.String("path", path), zap.Error(err))
	}
	if R2Configured() {
		if err := DeleteFromR2(fileName); err != nil {
			GetLogger().Warn("failed to remove stored PDF", zap.String("file", fileName), zap.Error(err))
		}
	}
}
