package sqlite

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanTaskRecord scans a single task record from a database row
func ScanTaskRecord(scanner Scanner) (*TaskRecord, error) {
	rec := &TaskRecord{}
	var completed int64
	var createdAt string

	err := scanner.Scan(
		&rec.ID,
		&rec.Title,
		&completed,
		&rec.Priority,
		&rec.Assignee,
		&createdAt,
		&rec.TimeSlot,
		&rec.Date,
	)
	if err != nil {
		return nil, err
	}

	rec.Completed = completed != 0
	rec.CreatedAt, err = ParseTimeFromDB(createdAt)
	if err != nil {
		return nil, err
	}

	return rec, nil
}

// ScanTaskRecords scans multiple task records from database rows
func ScanTaskRecords(rows Rows) ([]*TaskRecord, error) {
	var records []*TaskRecord
	for rows.Next() {
		rec, err := ScanTaskRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// ScanUserRecord scans a single user record from a database row
func ScanUserRecord(scanner Scanner) (*UserRecord, error) {
	user := &UserRecord{}
	var createdAt string

	err := scanner.Scan(
		&user.ID,
		&user.Email,
		&user.DisplayName,
		&user.PasswordSalt,
		&user.PasswordHash,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	user.CreatedAt, err = ParseTimeFromDB(createdAt)
	if err != nil {
		return nil, err
	}

	return user, nil
}
