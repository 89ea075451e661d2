package employee

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

const emptyValue = "-"

// buildProfilePDF renders a one page A4 profile sheet for an employee.
func buildProfilePDF(e EmployeeResponse) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 40

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 10, "EnlaceRB", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(contentW, 6, tr("Ficha de empleado"), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	rows := [][2]string{
		{"ID", fmt.Sprintf("%d", e.ID)},
		{"Nombres", deref(e.FirstNames)},
		{"Apellidos", deref(e.LastNames)},
		{"Departamento", deref(e.Department)},
		{"Cargo", deref(e.Position)},
		{"Fecha de ingreso", deref(e.HireDate)},
		{tr("Teléfono"), deref(e.Phone)},
		{tr("Dirección"), deref(e.Address)},
		{"Contacto de emergencia", deref(e.EmergencyName)},
		{tr("Teléfono de emergencia"), deref(e.EmergencyPhone)},
	}
	if e.User != nil {
		rows = append(rows,
			[2]string{"Usuario", e.User.Name},
			[2]string{"Correo", e.User.Email},
		)
		if e.User.Role != nil {
			rows = append(rows, [2]string{"Rol", e.User.Role.Name})
		}
	}

	labelW := 60.0
	for _, row := range rows {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(labelW, 8, row[0], "1", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(contentW-labelW, 8, tr(row[1]), "1", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render profile pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func deref(v *string) string {
	if v == nil || *v == "" {
		return emptyValue
	}
	return *v
}
