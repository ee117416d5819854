package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Códigos SQLSTATE que este backend interpreta.
const (
	sqlstateUniqueViolation = "23505" // unique_violation
	sqlstateRaiseException  = "P0001" // RAISE EXCEPTION en un stored procedure
	sqlstateUndefinedTable  = "42P01" // undefined_table
)

// isUniqueViolation verifica si un error es una violación de constraint único.
func isUniqueViolation(err error) bool {
	return pgErrCode(err) == sqlstateUniqueViolation
}

// raiseMessage devuelve el mensaje de negocio de un RAISE EXCEPTION (P0001)
// lanzado por un stored procedure, o "" si err no es de ese tipo. El mensaje
// primario es el texto que el procedimiento eligió para el usuario.
func raiseMessage(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == sqlstateRaiseException {
		return pgErr.Message
	}
	return ""
}

// isUndefinedTable verifica si la relación consultada no existe (42P01).
func isUndefinedTable(err error) bool {
	return pgErrCode(err) == sqlstateUndefinedTable
}

func pgErrCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
