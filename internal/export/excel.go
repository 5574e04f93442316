// Package export строит xlsx-выгрузки для админки.
package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

// UserRow - одна плоская строка выгрузки пользователей.
// Все текстовые поля уже очищены от HTML вызывающей стороной.
type UserRow struct {
	Email        string
	Role         string
	IsVerified   bool
	IsApproved   bool
	IsActive     bool
	Location     string
	Phone        string
	Skills       string
	Bio          string
	CompanyName  string
	RegisteredAt time.Time
}

var userHeaders = []string{
	"Email", "Role", "Verified", "Approved", "Active",
	"Location", "Phone", "Skills", "Bio", "Company", "Registered",
}

// UsersWorkbook сериализует строки в xlsx-книгу
func UsersWorkbook(rows []UserRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Users"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	for col, h := range userHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for i, row := range rows {
		values := []any{
			row.Email, row.Role, row.IsVerified, row.IsApproved, row.IsActive,
			row.Location, row.Phone, row.Skills, row.Bio, row.CompanyName,
			row.RegisteredAt.Format(time.RFC3339),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
