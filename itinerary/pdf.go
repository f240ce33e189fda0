package itinerary

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"voyago/models"
	"voyago/utils"

	"github.com/phpdave11/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
)

// ArtifactDir returns the directory flight documents are written to.
func ArtifactDir() string {
	return utils.GetEnv("ARTIFACT_DIR", "./artifacts")
}

// ArtifactFilename builds the document name from the sanitized route slugs
// and a second-resolution timestamp.
func ArtifactFilename(origin, destination string, at time.Time) string {
	return fmt.Sprintf("flight_%s_%s_%s.pdf",
		utils.SanitizeSlug(origin, "ORIGIN"),
		utils.SanitizeSlug(destination, "DEST"),
		at.Format("20060102_150405"))
}

// WriteFlightPDF renders the selection into a one-page PDF with a QR code
// pointing at its own download URL, writes it under ArtifactDir and returns
// the artifact reference.
func WriteFlightPDF(sel models.FlightSelection, publicBase string) (models.ArtifactRef, error) {
	return writeFlightPDF(sel, publicBase, time.Now().UTC())
}

func writeFlightPDF(sel models.FlightSelection, publicBase string, at time.Time) (models.ArtifactRef, error) {
	dir := ArtifactDir()
	if err := utils.EnsureDir(dir); err != nil {
		return models.ArtifactRef{}, fmt.Errorf("prepare artifact dir: %w", err)
	}

	filename := ArtifactFilename(sel.Origin, sel.Destination, at)
	downloadURL := publicBase + "/api/itineraries/files/" + filename

	qrPNG, err := qrcode.Encode(downloadURL, qrcode.Medium, 256)
	if err != nil {
		return models.ArtifactRef{}, fmt.Errorf("generate QR code: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Flight Selection")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Route: %s -> %s", sel.Origin, sel.Destination))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Travelers: %d", sel.Travelers))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Outbound: %s on %s", sel.Flight.Airline, sel.OutboundDate))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Departs %s (%s), arrives %s (%s)",
		sel.Flight.DepartureTime, sel.Flight.DepartureAirport,
		sel.Flight.ArrivalTime, sel.Flight.ArrivalAirport))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Duration: %s, stops: %d, price: %.2f",
		sel.Flight.Duration, sel.Flight.Stops, sel.Flight.Price))
	pdf.Ln(8)

	if sel.ReturnFlight != nil {
		pdf.Cell(0, 10, fmt.Sprintf("Return: %s on %s", sel.ReturnFlight.Airline, sel.ReturnDate))
		pdf.Ln(8)
		pdf.Cell(0, 10, fmt.Sprintf("Departs %s (%s), arrives %s (%s)",
			sel.ReturnFlight.DepartureTime, sel.ReturnFlight.DepartureAirport,
			sel.ReturnFlight.ArrivalTime, sel.ReturnFlight.ArrivalAirport))
		pdf.Ln(8)
	}

	pdf.Cell(0, 10, fmt.Sprintf("Flight budget: %.2f", sel.Budget))
	pdf.Ln(12)

	if sel.Note != "" {
		pdf.SetFont("Arial", "I", 10)
		pdf.MultiCell(0, 6, sel.Note, "", "L", false)
		pdf.Ln(4)
		pdf.SetFont("Arial", "", 12)
	}
	for _, warning := range metadataWarnings(sel.Metadata) {
		pdf.SetFont("Arial", "I", 10)
		pdf.MultiCell(0, 6, "Warning: "+warning, "", "L", false)
		pdf.SetFont("Arial", "", 12)
	}

	pdf.SetFont("Arial", "", 9)
	pdf.Cell(0, 10, "Generated "+at.Format("2006-01-02 15:04:05 UTC"))
	pdf.Ln(8)

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 40, 40, 40, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return models.ArtifactRef{}, fmt.Errorf("render PDF: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, filename), buf.Bytes(), 0o644); err != nil {
		return models.ArtifactRef{}, fmt.Errorf("write artifact: %w", err)
	}

	return models.ArtifactRef{File: filename, DownloadURL: downloadURL}, nil
}

// metadataWarnings pulls the warnings list out of the free-form metadata
// map, tolerating the []interface{} shape a JSON roundtrip produces.
func metadataWarnings(meta map[string]interface{}) []string {
	raw, ok := meta["warnings"]
	if !ok {
		return nil
	}
	switch v := raw.(type) {
	case []string:
		return v
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
