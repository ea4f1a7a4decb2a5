package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/highlandco/docgen/internal/entity"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pgUniqueViolation = "23505"

type Repository struct {
	db *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{
		db: pool,
	}
}

// ActiveCompany returns the company profile used on all documents.
// entity.ErrNotFound means no profile has been configured yet; callers
// decide whether that is fatal.
func (r *Repository) ActiveCompany(ctx context.Context) (entity.Company, error) {
	sqlQuery :=
		`SELECT id, name, address, phone, email, website, tin_number,
			bank_name, account_number, account_name, tagline, logo, logo_thumb, qr_code
		FROM company_info
		ORDER BY id
		LIMIT 1`

	var co entity.Company

	err := r.db.QueryRow(ctx, sqlQuery).Scan(
		&co.ID,
		&co.Name,
		&co.Address,
		&co.Phone,
		&co.Email,
		&co.Website,
		&co.TINNumber,
		&co.BankName,
		&co.AccountNumber,
		&co.AccountName,
		&co.Tagline,
		&co.Logo,
		&co.LogoThumb,
		&co.QRCode,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Company{}, entity.ErrNotFound
		}

		return entity.Company{}, err
	}

	return co, nil
}

func (r *Repository) SaveCompany(ctx context.Context, co entity.Company) (entity.Company, error) {
	if co.ID == 0 {
		sqlQuery :=
			`INSERT INTO company_info
				(name, address, phone, email, website, tin_number,
				bank_name, account_number, account_name, tagline, logo, logo_thumb)
			VALUES
				($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			RETURNING id`

		err := r.db.QueryRow(ctx, sqlQuery,
			co.Name,
			co.Address,
			co.Phone,
			co.Email,
			co.Website,
			co.TINNumber,
			co.BankName,
			co.AccountNumber,
			co.AccountName,
			co.Tagline,
			co.Logo,
			co.LogoThumb,
		).Scan(&co.ID)

		if err != nil {
			return entity.Company{}, err
		}

		return co, nil
	}

	sqlQuery :=
		`UPDATE company_info
		SET name = $1, address = $2, phone = $3, email = $4, website = $5, tin_number = $6,
			bank_name = $7, account_number = $8, account_name = $9, tagline = $10, logo = $11, logo_thumb = $12
		WHERE id = $13`

	_, err := r.db.Exec(ctx, sqlQuery,
		co.Name,
		co.Address,
		co.Phone,
		co.Email,
		co.Website,
		co.TINNumber,
		co.BankName,
		co.AccountNumber,
		co.AccountName,
		co.Tagline,
		co.Logo,
		co.LogoThumb,
		co.ID,
	)

	if err != nil {
		return entity.Company{}, err
	}

	return co, nil
}

// AssignCompanyQR persists a generated company QR reference at most
// once. The WHERE clause is the optimistic check that serializes
// concurrent finalizations of the same record.
func (r *Repository) AssignCompanyQR(ctx context.Context, id int64, qrRef string) (bool, error) {
	sqlQuery := `UPDATE company_info SET qr_code = $1 WHERE id = $2 AND qr_code = ''`

	tag, err := r.db.Exec(ctx, sqlQuery, qrRef, id)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}

func (r *Repository) CreateEmployee(ctx context.Context, e entity.Employee) (entity.Employee, error) {
	sqlQuery :=
		`INSERT INTO employees
			(full_name, job_title, department, photo, photo_thumb, qr_code)
		VALUES
			($1, $2, $3, $4, $5, '')
		RETURNING id, issue_date`

	err := r.db.QueryRow(ctx, sqlQuery,
		e.FullName,
		e.JobTitle,
		e.Department,
		e.Photo,
		e.PhotoThumb,
	).Scan(&e.ID, &e.IssueDate)

	if err != nil {
		return entity.Employee{}, err
	}

	return e, nil
}

func (r *Repository) EmployeeByID(ctx context.Context, id int64) (entity.Employee, error) {
	sqlQuery :=
		`SELECT id, full_name, job_title, department, photo, photo_thumb, employee_id, qr_code, issue_date
		FROM employees
		WHERE id = $1`

	return r.scanEmployee(r.db.QueryRow(ctx, sqlQuery, id))
}

func (r *Repository) ListEmployees(ctx context.Context) ([]entity.Employee, error) {
	sqlQuery :=
		`SELECT id, full_name, job_title, department, photo, photo_thumb, employee_id, qr_code, issue_date
		FROM employees
		ORDER BY full_name`

	rows, err := r.db.Query(ctx, sqlQuery)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var employees []entity.Employee

	for rows.Next() {
		e, err := r.scanEmployee(rows)
		if err != nil {
			return nil, err
		}

		employees = append(employees, e)
	}

	return employees, rows.Err()
}

func (r *Repository) scanEmployee(row pgx.Row) (entity.Employee, error) {
	var (
		e          entity.Employee
		employeeID *string
	)

	err := row.Scan(
		&e.ID,
		&e.FullName,
		&e.JobTitle,
		&e.Department,
		&e.Photo,
		&e.PhotoThumb,
		&employeeID,
		&e.QRCode,
		&e.IssueDate,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Employee{}, entity.ErrNotFound
		}

		return entity.Employee{}, err
	}

	if employeeID != nil {
		e.EmployeeID = *employeeID
	}

	return e, nil
}

// AssignEmployeeCredentials persists the derived identifier and QR
// reference at most once per employee; a false return means another
// finalization already won the race.
func (r *Repository) AssignEmployeeCredentials(ctx context.Context, id int64, employeeID, qrRef string) (bool, error) {
	sqlQuery :=
		`UPDATE employees
		SET employee_id = $1, qr_code = $2
		WHERE id = $3 AND employee_id IS NULL`

	tag, err := r.db.Exec(ctx, sqlQuery, employeeID, qrRef, id)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}

// NextInvoiceNumber advances the monotonic invoice counter. Numbers are
// never derived from the invoices primary key, so a deleted invoice
// never frees its number for reuse.
func (r *Repository) NextInvoiceNumber(ctx context.Context) (int64, error) {
	sqlQuery := `UPDATE invoice_counter SET last_number = last_number + 1 WHERE id = 1 RETURNING last_number`

	var n int64

	err := r.db.QueryRow(ctx, sqlQuery).Scan(&n)
	if err != nil {
		return 0, err
	}

	return n, nil
}

func (r *Repository) CreateInvoice(ctx context.Context, inv entity.Invoice) (entity.Invoice, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return entity.Invoice{}, err
	}

	defer tx.Rollback(ctx)

	sqlQuery :=
		`INSERT INTO invoices
			(invoice_number, issue_date, due_date, client_name, client_address, client_phone, other_comments, terms_of_payment)
		VALUES
			($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`

	err = tx.QueryRow(ctx, sqlQuery,
		inv.InvoiceNumber,
		inv.IssueDate,
		inv.DueDate,
		inv.ClientName,
		inv.ClientAddress,
		inv.ClientPhone,
		inv.OtherComments,
		inv.TermsOfPayment,
	).Scan(&inv.ID, &inv.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return entity.Invoice{}, entity.ErrAlreadyExists
		}

		return entity.Invoice{}, err
	}

	for i := range inv.Items {
		itemQuery :=
			`INSERT INTO invoice_items (invoice_id, description, quantity, unit_price)
			VALUES ($1, $2, $3, $4)
			RETURNING id`

		err = tx.QueryRow(ctx, itemQuery,
			inv.ID,
			inv.Items[i].Description,
			inv.Items[i].Quantity,
			inv.Items[i].UnitPrice,
		).Scan(&inv.Items[i].ID)

		if err != nil {
			return entity.Invoice{}, err
		}

		inv.Items[i].InvoiceID = inv.ID
	}

	err = tx.Commit(ctx)
	if err != nil {
		return entity.Invoice{}, err
	}

	return inv, nil
}

// InvoiceByID loads an invoice with its line items in insertion order.
func (r *Repository) InvoiceByID(ctx context.Context, id int64) (entity.Invoice, error) {
	sqlQuery :=
		`SELECT id, invoice_number, issue_date, due_date, client_name, client_address,
			client_phone, other_comments, terms_of_payment, created_at
		FROM invoices
		WHERE id = $1`

	var inv entity.Invoice

	err := r.db.QueryRow(ctx, sqlQuery, id).Scan(
		&inv.ID,
		&inv.InvoiceNumber,
		&inv.IssueDate,
		&inv.DueDate,
		&inv.ClientName,
		&inv.ClientAddress,
		&inv.ClientPhone,
		&inv.OtherComments,
		&inv.TermsOfPayment,
		&inv.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Invoice{}, entity.ErrNotFound
		}

		return entity.Invoice{}, err
	}

	itemsQuery :=
		`SELECT id, invoice_id, description, quantity, unit_price
		FROM invoice_items
		WHERE invoice_id = $1
		ORDER BY id`

	rows, err := r.db.Query(ctx, itemsQuery, id)
	if err != nil {
		return entity.Invoice{}, err
	}

	defer rows.Close()

	for rows.Next() {
		var item entity.LineItem

		err = rows.Scan(
			&item.ID,
			&item.InvoiceID,
			&item.Description,
			&item.Quantity,
			&item.UnitPrice,
		)

		if err != nil {
			return entity.Invoice{}, err
		}

		inv.Items = append(inv.Items, item)
	}

	return inv, rows.Err()
}

func (r *Repository) InvoicesList(ctx context.Context, filter entity.InvoicesFilter) ([]entity.InvoiceSummary, int, error) {
	stmt := sq.Select("count(*)").From("invoices").PlaceholderFormat(sq.Dollar)

	sqlQuery, args, err := stmt.ToSql()
	if err != nil {
		return nil, 0, err
	}

	var count int

	err = r.db.QueryRow(ctx, sqlQuery, args...).Scan(&count)
	if err != nil {
		return nil, 0, err
	}

	if count == 0 {
		return nil, 0, entity.ErrNotFound
	}

	stmt = sq.Select(
		"id",
		"invoice_number",
		"issue_date",
		"due_date",
		"client_name",
		"created_at",
		"COALESCE((SELECT sum(quantity * unit_price) FROM invoice_items WHERE invoice_id = invoices.id), 0)",
	).From("invoices").PlaceholderFormat(sq.Dollar)

	stmt = applyInvoicesFilter(stmt, filter)

	sqlQuery, args, err = stmt.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, 0, err
	}

	defer rows.Close()

	invoices := make([]entity.InvoiceSummary, 0, filter.Limit)

	for rows.Next() {
		var inv entity.InvoiceSummary

		err = rows.Scan(
			&inv.ID,
			&inv.InvoiceNumber,
			&inv.IssueDate,
			&inv.DueDate,
			&inv.ClientName,
			&inv.CreatedAt,
			&inv.Total,
		)

		if err != nil {
			return nil, 0, err
		}

		invoices = append(invoices, inv)
	}

	return invoices, count, rows.Err()
}

func applyInvoicesFilter(stmt sq.SelectBuilder, filter entity.InvoicesFilter) sq.SelectBuilder {
	stmt = stmt.Limit(filter.Limit)
	stmt = stmt.Offset((filter.Page - 1) * filter.Limit)
	stmt = stmt.OrderBy(fmt.Sprintf("%s %s", filter.SortBy, filter.OrderBy))

	return stmt
}

// DeleteInvoice removes an invoice and its items. The invoice number
// stays consumed: the counter never rewinds.
func (r *Repository) DeleteInvoice(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}
