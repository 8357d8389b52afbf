package newsletter

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

// ErrAlreadySubscribed is returned when the email already exists; the
// table carries a unique key on email.
var ErrAlreadySubscribed = errors.New("email already subscribed")

type SQL struct {
	conn *sqlx.DB
}

type NewsletterRepository interface {
	Subscribe(ctx context.Context, email string) error
}

func NewNewsletterRepository(conn *sqlx.DB) NewsletterRepository {
	return &SQL{conn: conn}
}

const mysqlDuplicateEntry = 1062

func (s *SQL) Subscribe(ctx context.Context, email string) error {
	_, err := s.conn.ExecContext(ctx, `INSERT INTO newsletter_subscriber (email, subscribed_at) VALUES (?, NOW())`, email)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			return ErrAlreadySubscribed
		}
		return err
	}
	return nil
}
