package order

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/OuicestnousCA/oca/constant"
	"github.com/OuicestnousCA/oca/model"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

// ErrDuplicateReference is returned when an insert loses the race on the
// payment_reference unique key, meaning the order was already written.
var ErrDuplicateReference = errors.New("order already exists for payment reference")

type SQL struct {
	conn *sqlx.DB
}

type OrderRepository interface {
	Insert(ctx context.Context, order *model.Order) error
	GetByID(ctx context.Context, id string) (*model.Order, error)
	GetByReference(ctx context.Context, reference string) (*model.Order, error)
	GetByNumberAndEmail(ctx context.Context, orderNumber, email string) (*model.Order, error)
	List(ctx context.Context, filter *model.OrderFilter) ([]model.Order, int64, error)
	UpdateStatus(ctx context.Context, id string, status constant.OrderStatus) (int64, error)
}

func NewOrderRepository(conn *sqlx.DB) OrderRepository {
	return &SQL{conn: conn}
}

const (
	insertOrderQuery = "INSERT INTO `order` (id, order_number, customer_email, customer_name, customer_phone, items, subtotal, shipping_cost, tax, total, status, payment_status, payment_reference, payment_provider, shipping_address, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())"
	getOrderBase     = "SELECT id, order_number, customer_email, customer_name, customer_phone, items, subtotal, shipping_cost, tax, total, status, payment_status, payment_reference, payment_provider, shipping_address, created_at FROM `order`"
)

const mysqlDuplicateEntry = 1062

func (r *SQL) Insert(ctx context.Context, order *model.Order) error {
	itemsJSON, err := json.Marshal(order.Items)
	if err != nil {
		return err
	}
	var shippingJSON []byte
	if order.ShippingAddress != nil {
		shippingJSON, err = json.Marshal(order.ShippingAddress)
		if err != nil {
			return err
		}
	}

	_, err = r.conn.ExecContext(ctx, insertOrderQuery,
		order.ID, order.OrderNumber, order.CustomerEmail, order.CustomerName, order.CustomerPhone,
		itemsJSON, order.Subtotal, order.ShippingCost, order.Tax, order.Total,
		order.Status, order.PaymentStatus, order.PaymentReference, order.PaymentProvider, shippingJSON)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			return ErrDuplicateReference
		}
		return err
	}
	return nil
}

func (r *SQL) GetByID(ctx context.Context, id string) (*model.Order, error) {
	return r.getOne(ctx, getOrderBase+" WHERE id = ?", id)
}

func (r *SQL) GetByReference(ctx context.Context, reference string) (*model.Order, error) {
	return r.getOne(ctx, getOrderBase+" WHERE payment_reference = ?", reference)
}

func (r *SQL) GetByNumberAndEmail(ctx context.Context, orderNumber, email string) (*model.Order, error) {
	return r.getOne(ctx, getOrderBase+" WHERE order_number = ? AND customer_email = ?", orderNumber, email)
}

func (r *SQL) getOne(ctx context.Context, query string, args ...any) (*model.Order, error) {
	var order model.Order
	if err := r.conn.QueryRowxContext(ctx, query, args...).StructScan(&order); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if err := decodeOrderJSON(&order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *SQL) List(ctx context.Context, filter *model.OrderFilter) ([]model.Order, int64, error) {
	query := getOrderBase + " WHERE true"
	countQuery := "SELECT COUNT(*) FROM `order` WHERE true"
	args := make([]any, 0, 3)

	if filter.Status != "" {
		query += " AND status = ?"
		countQuery += " AND status = ?"
		args = append(args, filter.Status)
	}

	var total int64
	if err := r.conn.QueryRowxContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query += " ORDER BY created_at DESC LIMIT ? OFFSET ?"
	args = append(args, filter.PerPage, (filter.Page-1)*filter.PerPage)

	rows, err := r.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders := make([]model.Order, 0, filter.PerPage)
	for rows.Next() {
		var order model.Order
		if err := rows.StructScan(&order); err != nil {
			return nil, 0, err
		}
		if err := decodeOrderJSON(&order); err != nil {
			return nil, 0, err
		}
		orders = append(orders, order)
	}
	return orders, total, rows.Err()
}

func (r *SQL) UpdateStatus(ctx context.Context, id string, status constant.OrderStatus) (int64, error) {
	res, err := r.conn.ExecContext(ctx, "UPDATE `order` SET status = ? WHERE id = ?", status, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func decodeOrderJSON(order *model.Order) error {
	if len(order.ItemsJSON) > 0 {
		if err := json.Unmarshal(order.ItemsJSON, &order.Items); err != nil {
			return err
		}
	}
	if len(order.ShippingJSON) > 0 {
		if err := json.Unmarshal(order.ShippingJSON, &order.ShippingAddress); err != nil {
			return err
		}
	}
	return nil
}
