package errors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// StoreFailure is what the database driver reported, when it reported anything.
type StoreFailure struct {
	Driver     string `json:"driver"`
	Code       string `json:"code,omitempty"`
	Constraint string `json:"constraint,omitempty"`
	Table      string `json:"table,omitempty"`
	Column     string `json:"column,omitempty"`
	Detail     string `json:"detail,omitempty"`
	Message    string `json:"message,omitempty"`
}

// ErrorDump flattens an error chain for logs. It is never sent to clients.
type ErrorDump struct {
	TopMessage string        `json:"top_message"`
	Code       Code          `json:"code,omitempty"`
	Step       string        `json:"step,omitempty"`
	Retryable  bool          `json:"retryable"`
	Chain      []string      `json:"chain,omitempty"`
	Store      *StoreFailure `json:"store,omitempty"`
}

func Dump(err error) ErrorDump {
	if err == nil {
		return ErrorDump{}
	}

	d := ErrorDump{TopMessage: err.Error(), Step: Step(err)}
	if te := As(err); te != nil {
		d.Code = te.Code()
		d.Retryable = MetadataFor(d.Code).Retryable
	}
	for e := err; e != nil; e = errors.Unwrap(e) {
		d.Chain = append(d.Chain, fmt.Sprintf("%T: %v", e, e))
	}
	d.Store = storeFailure(err)
	return d
}

// Fields renders the dump as flat log fields.
func (d ErrorDump) Fields() map[string]any {
	fields := map[string]any{
		"error":       d.TopMessage,
		"error_code":  d.Code,
		"error_chain": d.Chain,
		"retryable":   d.Retryable,
	}
	if d.Step != "" {
		fields["step"] = d.Step
	}
	if s := d.Store; s != nil {
		fields["db_driver"] = s.Driver
		fields["db_code"] = s.Code
		fields["db_constraint"] = s.Constraint
		fields["db_table"] = s.Table
		fields["db_column"] = s.Column
		fields["db_detail"] = s.Detail
		fields["db_message"] = s.Message
	}
	return fields
}

func storeFailure(err error) *StoreFailure {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return &StoreFailure{
			Driver:     "pgx",
			Code:       pgxErr.Code,
			Constraint: pgxErr.ConstraintName,
			Table:      pgxErr.TableName,
			Column:     pgxErr.ColumnName,
			Detail:     pgxErr.Detail,
			Message:    pgxErr.Message,
		}
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return &StoreFailure{
			Driver:     "pq",
			Code:       string(pqErr.Code),
			Constraint: pqErr.Constraint,
			Table:      pqErr.Table,
			Column:     pqErr.Column,
			Detail:     pqErr.Detail,
			Message:    pqErr.Message,
		}
	}

	return sqliteFailure(err.Error())
}

// sqliteFailure parses messages such as
// "UNIQUE constraint failed: categories.category_name".
func sqliteFailure(msg string) *StoreFailure {
	const marker = " constraint failed: "
	i := strings.Index(msg, marker)
	if i < 0 {
		return nil
	}
	kind := msg[strings.LastIndex(msg[:i], " ")+1 : i]
	target := strings.TrimSpace(msg[i+len(marker):])
	if j := strings.Index(target, ","); j >= 0 {
		target = target[:j]
	}
	out := &StoreFailure{Driver: "sqlite", Code: kind, Message: msg}
	if table, column, ok := strings.Cut(target, "."); ok {
		out.Table, out.Column = table, column
	}
	return out
}
