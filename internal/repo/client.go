// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/Bemyself19/sehatynet_backend/internal/repo/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/Bemyself19/sehatynet_backend/internal/repo/medicalrequest"
	"github.com/Bemyself19/sehatynet_backend/internal/repo/notification"
	"github.com/Bemyself19/sehatynet_backend/internal/repo/notificationpref"
	"github.com/Bemyself19/sehatynet_backend/internal/repo/outboxmessage"
	"github.com/Bemyself19/sehatynet_backend/internal/repo/payment"
	"github.com/Bemyself19/sehatynet_backend/internal/repo/platformsetting"
	"github.com/Bemyself19/sehatynet_backend/internal/repo/requestitem"
	"github.com/Bemyself19/sehatynet_backend/internal/repo/user"
	"github.com/Bemyself19/sehatynet_backend/internal/repo/usersession"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// MedicalRequest is the client for interacting with the MedicalRequest builders.
	MedicalRequest *MedicalRequestClient
	// Notification is the client for interacting with the Notification builders.
	Notification *NotificationClient
	// NotificationPref is the client for interacting with the NotificationPref builders.
	NotificationPref *NotificationPrefClient
	// OutboxMessage is the client for interacting with the OutboxMessage builders.
	OutboxMessage *OutboxMessageClient
	// Payment is the client for interacting with the Payment builders.
	Payment *PaymentClient
	// PlatformSetting is the client for interacting with the PlatformSetting builders.
	PlatformSetting *PlatformSettingClient
	// RequestItem is the client for interacting with the RequestItem builders.
	RequestItem *RequestItemClient
	// User is the client for interacting with the User builders.
	User *UserClient
	// UserSession is the client for interacting with the UserSession builders.
	UserSession *UserSessionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.MedicalRequest = NewMedicalRequestClient(c.config)
	c.Notification = NewNotificationClient(c.config)
	c.NotificationPref = NewNotificationPrefClient(c.config)
	c.OutboxMessage = NewOutboxMessageClient(c.config)
	c.Payment = NewPaymentClient(c.config)
	c.PlatformSetting = NewPlatformSettingClient(c.config)
	c.RequestItem = NewRequestItemClient(c.config)
	c.User = NewUserClient(c.config)
	c.UserSession = NewUserSessionClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("repo: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("repo: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		MedicalRequest:   NewMedicalRequestClient(cfg),
		Notification:     NewNotificationClient(cfg),
		NotificationPref: NewNotificationPrefClient(cfg),
		OutboxMessage:    NewOutboxMessageClient(cfg),
		Payment:          NewPaymentClient(cfg),
		PlatformSetting:  NewPlatformSettingClient(cfg),
		RequestItem:      NewRequestItemClient(cfg),
		User:             NewUserClient(cfg),
		UserSession:      NewUserSessionClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		MedicalRequest:   NewMedicalRequestClient(cfg),
		Notification:     NewNotificationClient(cfg),
		NotificationPref: NewNotificationPrefClient(cfg),
		OutboxMessage:    NewOutboxMessageClient(cfg),
		Payment:          NewPaymentClient(cfg),
		PlatformSetting:  NewPlatformSettingClient(cfg),
		RequestItem:      NewRequestItemClient(cfg),
		User:             NewUserClient(cfg),
		UserSession:      NewUserSessionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		MedicalRequest.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.MedicalRequest, c.Notification, c.NotificationPref, c.OutboxMessage,
		c.Payment, c.PlatformSetting, c.RequestItem, c.User, c.UserSession,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.MedicalRequest, c.Notification, c.NotificationPref, c.OutboxMessage,
		c.Payment, c.PlatformSetting, c.RequestItem, c.User, c.UserSession,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *MedicalRequestMutation:
		return c.MedicalRequest.mutate(ctx, m)
	case *NotificationMutation:
		return c.Notification.mutate(ctx, m)
	case *NotificationPrefMutation:
		return c.NotificationPref.mutate(ctx, m)
	case *OutboxMessageMutation:
		return c.OutboxMessage.mutate(ctx, m)
	case *PaymentMutation:
		return c.Payment.mutate(ctx, m)
	case *PlatformSettingMutation:
		return c.PlatformSetting.mutate(ctx, m)
	case *RequestItemMutation:
		return c.RequestItem.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	case *UserSessionMutation:
		return c.UserSession.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("repo: unknown mutation type %T", m)
	}
}

// MedicalRequestClient is a client for the MedicalRequest schema.
type MedicalRequestClient struct {
	config
}

// NewMedicalRequestClient returns a client for the MedicalRequest from the given config.
func NewMedicalRequestClient(c config) *MedicalRequestClient {
	return &MedicalRequestClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `medicalrequest.Hooks(f(g(h())))`.
func (c *MedicalRequestClient) Use(hooks ...Hook) {
	c.hooks.MedicalRequest = append(c.hooks.MedicalRequest, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `medicalrequest.Intercept(f(g(h())))`.
func (c *MedicalRequestClient) Intercept(interceptors ...Interceptor) {
	c.inters.MedicalRequest = append(c.inters.MedicalRequest, interceptors...)
}

// Create returns a builder for creating a MedicalRequest entity.
func (c *MedicalRequestClient) Create() *MedicalRequestCreate {
	mutation := newMedicalRequestMutation(c.config, OpCreate)
	return &MedicalRequestCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MedicalRequest entities.
func (c *MedicalRequestClient) CreateBulk(builders ...*MedicalRequestCreate) *MedicalRequestCreateBulk {
	return &MedicalRequestCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MedicalRequestClient) MapCreateBulk(slice any, setFunc func(*MedicalRequestCreate, int)) *MedicalRequestCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MedicalRequestCreateBulk{err: fmt.Errorf("calling to MedicalRequestClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MedicalRequestCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MedicalRequestCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MedicalRequest.
func (c *MedicalRequestClient) Update() *MedicalRequestUpdate {
	mutation := newMedicalRequestMutation(c.config, OpUpdate)
	return &MedicalRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MedicalRequestClient) UpdateOne(_m *MedicalRequest) *MedicalRequestUpdateOne {
	mutation := newMedicalRequestMutation(c.config, OpUpdateOne, withMedicalRequest(_m))
	return &MedicalRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MedicalRequestClient) UpdateOneID(id uuid.UUID) *MedicalRequestUpdateOne {
	mutation := newMedicalRequestMutation(c.config, OpUpdateOne, withMedicalRequestID(id))
	return &MedicalRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MedicalRequest.
func (c *MedicalRequestClient) Delete() *MedicalRequestDelete {
	mutation := newMedicalRequestMutation(c.config, OpDelete)
	return &MedicalRequestDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MedicalRequestClient) DeleteOne(_m *MedicalRequest) *MedicalRequestDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MedicalRequestClient) DeleteOneID(id uuid.UUID) *MedicalRequestDeleteOne {
	builder := c.Delete().Where(medicalrequest.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MedicalRequestDeleteOne{builder}
}

// Query returns a query builder for MedicalRequest.
func (c *MedicalRequestClient) Query() *MedicalRequestQuery {
	return &MedicalRequestQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMedicalRequest},
		inters: c.Interceptors(),
	}
}

// Get returns a MedicalRequest entity by its id.
func (c *MedicalRequestClient) Get(ctx context.Context, id uuid.UUID) (*MedicalRequest, error) {
	return c.Query().Where(medicalrequest.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MedicalRequestClient) GetX(ctx context.Context, id uuid.UUID) *MedicalRequest {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPatient queries the patient edge of a MedicalRequest.
func (c *MedicalRequestClient) QueryPatient(_m *MedicalRequest) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(medicalrequest.Table, medicalrequest.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, medicalrequest.PatientTable, medicalrequest.PatientColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryProvider queries the provider edge of a MedicalRequest.
func (c *MedicalRequestClient) QueryProvider(_m *MedicalRequest) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(medicalrequest.Table, medicalrequest.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, medicalrequest.ProviderTable, medicalrequest.ProviderColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryItems queries the items edge of a MedicalRequest.
func (c *MedicalRequestClient) QueryItems(_m *MedicalRequest) *RequestItemQuery {
	query := (&RequestItemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(medicalrequest.Table, medicalrequest.FieldID, id),
			sqlgraph.To(requestitem.Table, requestitem.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, medicalrequest.ItemsTable, medicalrequest.ItemsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MedicalRequestClient) Hooks() []Hook {
	return c.hooks.MedicalRequest
}

// Interceptors returns the client interceptors.
func (c *MedicalRequestClient) Interceptors() []Interceptor {
	return c.inters.MedicalRequest
}

func (c *MedicalRequestClient) mutate(ctx context.Context, m *MedicalRequestMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MedicalRequestCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MedicalRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MedicalRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MedicalRequestDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown MedicalRequest mutation op: %q", m.Op())
	}
}

// NotificationClient is a client for the Notification schema.
type NotificationClient struct {
	config
}

// NewNotificationClient returns a client for the Notification from the given config.
func NewNotificationClient(c config) *NotificationClient {
	return &NotificationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `notification.Hooks(f(g(h())))`.
func (c *NotificationClient) Use(hooks ...Hook) {
	c.hooks.Notification = append(c.hooks.Notification, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `notification.Intercept(f(g(h())))`.
func (c *NotificationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Notification = append(c.inters.Notification, interceptors...)
}

// Create returns a builder for creating a Notification entity.
func (c *NotificationClient) Create() *NotificationCreate {
	mutation := newNotificationMutation(c.config, OpCreate)
	return &NotificationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Notification entities.
func (c *NotificationClient) CreateBulk(builders ...*NotificationCreate) *NotificationCreateBulk {
	return &NotificationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *NotificationClient) MapCreateBulk(slice any, setFunc func(*NotificationCreate, int)) *NotificationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &NotificationCreateBulk{err: fmt.Errorf("calling to NotificationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*NotificationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &NotificationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Notification.
func (c *NotificationClient) Update() *NotificationUpdate {
	mutation := newNotificationMutation(c.config, OpUpdate)
	return &NotificationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *NotificationClient) UpdateOne(_m *Notification) *NotificationUpdateOne {
	mutation := newNotificationMutation(c.config, OpUpdateOne, withNotification(_m))
	return &NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *NotificationClient) UpdateOneID(id uuid.UUID) *NotificationUpdateOne {
	mutation := newNotificationMutation(c.config, OpUpdateOne, withNotificationID(id))
	return &NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Notification.
func (c *NotificationClient) Delete() *NotificationDelete {
	mutation := newNotificationMutation(c.config, OpDelete)
	return &NotificationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *NotificationClient) DeleteOne(_m *Notification) *NotificationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *NotificationClient) DeleteOneID(id uuid.UUID) *NotificationDeleteOne {
	builder := c.Delete().Where(notification.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &NotificationDeleteOne{builder}
}

// Query returns a query builder for Notification.
func (c *NotificationClient) Query() *NotificationQuery {
	return &NotificationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeNotification},
		inters: c.Interceptors(),
	}
}

// Get returns a Notification entity by its id.
func (c *NotificationClient) Get(ctx context.Context, id uuid.UUID) (*Notification, error) {
	return c.Query().Where(notification.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *NotificationClient) GetX(ctx context.Context, id uuid.UUID) *Notification {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *NotificationClient) Hooks() []Hook {
	return c.hooks.Notification
}

// Interceptors returns the client interceptors.
func (c *NotificationClient) Interceptors() []Interceptor {
	return c.inters.Notification
}

func (c *NotificationClient) mutate(ctx context.Context, m *NotificationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&NotificationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&NotificationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&NotificationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Notification mutation op: %q", m.Op())
	}
}

// NotificationPrefClient is a client for the NotificationPref schema.
type NotificationPrefClient struct {
	config
}

// NewNotificationPrefClient returns a client for the NotificationPref from the given config.
func NewNotificationPrefClient(c config) *NotificationPrefClient {
	return &NotificationPrefClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `notificationpref.Hooks(f(g(h())))`.
func (c *NotificationPrefClient) Use(hooks ...Hook) {
	c.hooks.NotificationPref = append(c.hooks.NotificationPref, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `notificationpref.Intercept(f(g(h())))`.
func (c *NotificationPrefClient) Intercept(interceptors ...Interceptor) {
	c.inters.NotificationPref = append(c.inters.NotificationPref, interceptors...)
}

// Create returns a builder for creating a NotificationPref entity.
func (c *NotificationPrefClient) Create() *NotificationPrefCreate {
	mutation := newNotificationPrefMutation(c.config, OpCreate)
	return &NotificationPrefCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of NotificationPref entities.
func (c *NotificationPrefClient) CreateBulk(builders ...*NotificationPrefCreate) *NotificationPrefCreateBulk {
	return &NotificationPrefCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *NotificationPrefClient) MapCreateBulk(slice any, setFunc func(*NotificationPrefCreate, int)) *NotificationPrefCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &NotificationPrefCreateBulk{err: fmt.Errorf("calling to NotificationPrefClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*NotificationPrefCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &NotificationPrefCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for NotificationPref.
func (c *NotificationPrefClient) Update() *NotificationPrefUpdate {
	mutation := newNotificationPrefMutation(c.config, OpUpdate)
	return &NotificationPrefUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *NotificationPrefClient) UpdateOne(_m *NotificationPref) *NotificationPrefUpdateOne {
	mutation := newNotificationPrefMutation(c.config, OpUpdateOne, withNotificationPref(_m))
	return &NotificationPrefUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *NotificationPrefClient) UpdateOneID(id uuid.UUID) *NotificationPrefUpdateOne {
	mutation := newNotificationPrefMutation(c.config, OpUpdateOne, withNotificationPrefID(id))
	return &NotificationPrefUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for NotificationPref.
func (c *NotificationPrefClient) Delete() *NotificationPrefDelete {
	mutation := newNotificationPrefMutation(c.config, OpDelete)
	return &NotificationPrefDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *NotificationPrefClient) DeleteOne(_m *NotificationPref) *NotificationPrefDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *NotificationPrefClient) DeleteOneID(id uuid.UUID) *NotificationPrefDeleteOne {
	builder := c.Delete().Where(notificationpref.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &NotificationPrefDeleteOne{builder}
}

// Query returns a query builder for NotificationPref.
func (c *NotificationPrefClient) Query() *NotificationPrefQuery {
	return &NotificationPrefQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeNotificationPref},
		inters: c.Interceptors(),
	}
}

// Get returns a NotificationPref entity by its id.
func (c *NotificationPrefClient) Get(ctx context.Context, id uuid.UUID) (*NotificationPref, error) {
	return c.Query().Where(notificationpref.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *NotificationPrefClient) GetX(ctx context.Context, id uuid.UUID) *NotificationPref {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *NotificationPrefClient) Hooks() []Hook {
	return c.hooks.NotificationPref
}

// Interceptors returns the client interceptors.
func (c *NotificationPrefClient) Interceptors() []Interceptor {
	return c.inters.NotificationPref
}

func (c *NotificationPrefClient) mutate(ctx context.Context, m *NotificationPrefMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&NotificationPrefCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&NotificationPrefUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&NotificationPrefUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&NotificationPrefDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown NotificationPref mutation op: %q", m.Op())
	}
}

// OutboxMessageClient is a client for the OutboxMessage schema.
type OutboxMessageClient struct {
	config
}

// NewOutboxMessageClient returns a client for the OutboxMessage from the given config.
func NewOutboxMessageClient(c config) *OutboxMessageClient {
	return &OutboxMessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `outboxmessage.Hooks(f(g(h())))`.
func (c *OutboxMessageClient) Use(hooks ...Hook) {
	c.hooks.OutboxMessage = append(c.hooks.OutboxMessage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `outboxmessage.Intercept(f(g(h())))`.
func (c *OutboxMessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.OutboxMessage = append(c.inters.OutboxMessage, interceptors...)
}

// Create returns a builder for creating a OutboxMessage entity.
func (c *OutboxMessageClient) Create() *OutboxMessageCreate {
	mutation := newOutboxMessageMutation(c.config, OpCreate)
	return &OutboxMessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of OutboxMessage entities.
func (c *OutboxMessageClient) CreateBulk(builders ...*OutboxMessageCreate) *OutboxMessageCreateBulk {
	return &OutboxMessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OutboxMessageClient) MapCreateBulk(slice any, setFunc func(*OutboxMessageCreate, int)) *OutboxMessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OutboxMessageCreateBulk{err: fmt.Errorf("calling to OutboxMessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OutboxMessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OutboxMessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for OutboxMessage.
func (c *OutboxMessageClient) Update() *OutboxMessageUpdate {
	mutation := newOutboxMessageMutation(c.config, OpUpdate)
	return &OutboxMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OutboxMessageClient) UpdateOne(_m *OutboxMessage) *OutboxMessageUpdateOne {
	mutation := newOutboxMessageMutation(c.config, OpUpdateOne, withOutboxMessage(_m))
	return &OutboxMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OutboxMessageClient) UpdateOneID(id uuid.UUID) *OutboxMessageUpdateOne {
	mutation := newOutboxMessageMutation(c.config, OpUpdateOne, withOutboxMessageID(id))
	return &OutboxMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for OutboxMessage.
func (c *OutboxMessageClient) Delete() *OutboxMessageDelete {
	mutation := newOutboxMessageMutation(c.config, OpDelete)
	return &OutboxMessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OutboxMessageClient) DeleteOne(_m *OutboxMessage) *OutboxMessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OutboxMessageClient) DeleteOneID(id uuid.UUID) *OutboxMessageDeleteOne {
	builder := c.Delete().Where(outboxmessage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OutboxMessageDeleteOne{builder}
}

// Query returns a query builder for OutboxMessage.
func (c *OutboxMessageClient) Query() *OutboxMessageQuery {
	return &OutboxMessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOutboxMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a OutboxMessage entity by its id.
func (c *OutboxMessageClient) Get(ctx context.Context, id uuid.UUID) (*OutboxMessage, error) {
	return c.Query().Where(outboxmessage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OutboxMessageClient) GetX(ctx context.Context, id uuid.UUID) *OutboxMessage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *OutboxMessageClient) Hooks() []Hook {
	return c.hooks.OutboxMessage
}

// Interceptors returns the client interceptors.
func (c *OutboxMessageClient) Interceptors() []Interceptor {
	return c.inters.OutboxMessage
}

func (c *OutboxMessageClient) mutate(ctx context.Context, m *OutboxMessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OutboxMessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OutboxMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OutboxMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OutboxMessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown OutboxMessage mutation op: %q", m.Op())
	}
}

// PaymentClient is a client for the Payment schema.
type PaymentClient struct {
	config
}

// NewPaymentClient returns a client for the Payment from the given config.
func NewPaymentClient(c config) *PaymentClient {
	return &PaymentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `payment.Hooks(f(g(h())))`.
func (c *PaymentClient) Use(hooks ...Hook) {
	c.hooks.Payment = append(c.hooks.Payment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `payment.Intercept(f(g(h())))`.
func (c *PaymentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Payment = append(c.inters.Payment, interceptors...)
}

// Create returns a builder for creating a Payment entity.
func (c *PaymentClient) Create() *PaymentCreate {
	mutation := newPaymentMutation(c.config, OpCreate)
	return &PaymentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Payment entities.
func (c *PaymentClient) CreateBulk(builders ...*PaymentCreate) *PaymentCreateBulk {
	return &PaymentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PaymentClient) MapCreateBulk(slice any, setFunc func(*PaymentCreate, int)) *PaymentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PaymentCreateBulk{err: fmt.Errorf("calling to PaymentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PaymentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PaymentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Payment.
func (c *PaymentClient) Update() *PaymentUpdate {
	mutation := newPaymentMutation(c.config, OpUpdate)
	return &PaymentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PaymentClient) UpdateOne(_m *Payment) *PaymentUpdateOne {
	mutation := newPaymentMutation(c.config, OpUpdateOne, withPayment(_m))
	return &PaymentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PaymentClient) UpdateOneID(id uuid.UUID) *PaymentUpdateOne {
	mutation := newPaymentMutation(c.config, OpUpdateOne, withPaymentID(id))
	return &PaymentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Payment.
func (c *PaymentClient) Delete() *PaymentDelete {
	mutation := newPaymentMutation(c.config, OpDelete)
	return &PaymentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PaymentClient) DeleteOne(_m *Payment) *PaymentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PaymentClient) DeleteOneID(id uuid.UUID) *PaymentDeleteOne {
	builder := c.Delete().Where(payment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PaymentDeleteOne{builder}
}

// Query returns a query builder for Payment.
func (c *PaymentClient) Query() *PaymentQuery {
	return &PaymentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePayment},
		inters: c.Interceptors(),
	}
}

// Get returns a Payment entity by its id.
func (c *PaymentClient) Get(ctx context.Context, id uuid.UUID) (*Payment, error) {
	return c.Query().Where(payment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PaymentClient) GetX(ctx context.Context, id uuid.UUID) *Payment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PaymentClient) Hooks() []Hook {
	return c.hooks.Payment
}

// Interceptors returns the client interceptors.
func (c *PaymentClient) Interceptors() []Interceptor {
	return c.inters.Payment
}

func (c *PaymentClient) mutate(ctx context.Context, m *PaymentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PaymentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PaymentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PaymentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PaymentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Payment mutation op: %q", m.Op())
	}
}

// PlatformSettingClient is a client for the PlatformSetting schema.
type PlatformSettingClient struct {
	config
}

// NewPlatformSettingClient returns a client for the PlatformSetting from the given config.
func NewPlatformSettingClient(c config) *PlatformSettingClient {
	return &PlatformSettingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `platformsetting.Hooks(f(g(h())))`.
func (c *PlatformSettingClient) Use(hooks ...Hook) {
	c.hooks.PlatformSetting = append(c.hooks.PlatformSetting, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `platformsetting.Intercept(f(g(h())))`.
func (c *PlatformSettingClient) Intercept(interceptors ...Interceptor) {
	c.inters.PlatformSetting = append(c.inters.PlatformSetting, interceptors...)
}

// Create returns a builder for creating a PlatformSetting entity.
func (c *PlatformSettingClient) Create() *PlatformSettingCreate {
	mutation := newPlatformSettingMutation(c.config, OpCreate)
	return &PlatformSettingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PlatformSetting entities.
func (c *PlatformSettingClient) CreateBulk(builders ...*PlatformSettingCreate) *PlatformSettingCreateBulk {
	return &PlatformSettingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PlatformSettingClient) MapCreateBulk(slice any, setFunc func(*PlatformSettingCreate, int)) *PlatformSettingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PlatformSettingCreateBulk{err: fmt.Errorf("calling to PlatformSettingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PlatformSettingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PlatformSettingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PlatformSetting.
func (c *PlatformSettingClient) Update() *PlatformSettingUpdate {
	mutation := newPlatformSettingMutation(c.config, OpUpdate)
	return &PlatformSettingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PlatformSettingClient) UpdateOne(_m *PlatformSetting) *PlatformSettingUpdateOne {
	mutation := newPlatformSettingMutation(c.config, OpUpdateOne, withPlatformSetting(_m))
	return &PlatformSettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PlatformSettingClient) UpdateOneID(id uuid.UUID) *PlatformSettingUpdateOne {
	mutation := newPlatformSettingMutation(c.config, OpUpdateOne, withPlatformSettingID(id))
	return &PlatformSettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PlatformSetting.
func (c *PlatformSettingClient) Delete() *PlatformSettingDelete {
	mutation := newPlatformSettingMutation(c.config, OpDelete)
	return &PlatformSettingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PlatformSettingClient) DeleteOne(_m *PlatformSetting) *PlatformSettingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PlatformSettingClient) DeleteOneID(id uuid.UUID) *PlatformSettingDeleteOne {
	builder := c.Delete().Where(platformsetting.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PlatformSettingDeleteOne{builder}
}

// Query returns a query builder for PlatformSetting.
func (c *PlatformSettingClient) Query() *PlatformSettingQuery {
	return &PlatformSettingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePlatformSetting},
		inters: c.Interceptors(),
	}
}

// Get returns a PlatformSetting entity by its id.
func (c *PlatformSettingClient) Get(ctx context.Context, id uuid.UUID) (*PlatformSetting, error) {
	return c.Query().Where(platformsetting.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PlatformSettingClient) GetX(ctx context.Context, id uuid.UUID) *PlatformSetting {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PlatformSettingClient) Hooks() []Hook {
	return c.hooks.PlatformSetting
}

// Interceptors returns the client interceptors.
func (c *PlatformSettingClient) Interceptors() []Interceptor {
	return c.inters.PlatformSetting
}

func (c *PlatformSettingClient) mutate(ctx context.Context, m *PlatformSettingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PlatformSettingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PlatformSettingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PlatformSettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PlatformSettingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown PlatformSetting mutation op: %q", m.Op())
	}
}

// RequestItemClient is a client for the RequestItem schema.
type RequestItemClient struct {
	config
}

// NewRequestItemClient returns a client for the RequestItem from the given config.
func NewRequestItemClient(c config) *RequestItemClient {
	return &RequestItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `requestitem.Hooks(f(g(h())))`.
func (c *RequestItemClient) Use(hooks ...Hook) {
	c.hooks.RequestItem = append(c.hooks.RequestItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `requestitem.Intercept(f(g(h())))`.
func (c *RequestItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.RequestItem = append(c.inters.RequestItem, interceptors...)
}

// Create returns a builder for creating a RequestItem entity.
func (c *RequestItemClient) Create() *RequestItemCreate {
	mutation := newRequestItemMutation(c.config, OpCreate)
	return &RequestItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RequestItem entities.
func (c *RequestItemClient) CreateBulk(builders ...*RequestItemCreate) *RequestItemCreateBulk {
	return &RequestItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RequestItemClient) MapCreateBulk(slice any, setFunc func(*RequestItemCreate, int)) *RequestItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RequestItemCreateBulk{err: fmt.Errorf("calling to RequestItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RequestItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RequestItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RequestItem.
func (c *RequestItemClient) Update() *RequestItemUpdate {
	mutation := newRequestItemMutation(c.config, OpUpdate)
	return &RequestItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RequestItemClient) UpdateOne(_m *RequestItem) *RequestItemUpdateOne {
	mutation := newRequestItemMutation(c.config, OpUpdateOne, withRequestItem(_m))
	return &RequestItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RequestItemClient) UpdateOneID(id uuid.UUID) *RequestItemUpdateOne {
	mutation := newRequestItemMutation(c.config, OpUpdateOne, withRequestItemID(id))
	return &RequestItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RequestItem.
func (c *RequestItemClient) Delete() *RequestItemDelete {
	mutation := newRequestItemMutation(c.config, OpDelete)
	return &RequestItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RequestItemClient) DeleteOne(_m *RequestItem) *RequestItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RequestItemClient) DeleteOneID(id uuid.UUID) *RequestItemDeleteOne {
	builder := c.Delete().Where(requestitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RequestItemDeleteOne{builder}
}

// Query returns a query builder for RequestItem.
func (c *RequestItemClient) Query() *RequestItemQuery {
	return &RequestItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRequestItem},
		inters: c.Interceptors(),
	}
}

// Get returns a RequestItem entity by its id.
func (c *RequestItemClient) Get(ctx context.Context, id uuid.UUID) (*RequestItem, error) {
	return c.Query().Where(requestitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RequestItemClient) GetX(ctx context.Context, id uuid.UUID) *RequestItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRequest queries the request edge of a RequestItem.
func (c *RequestItemClient) QueryRequest(_m *RequestItem) *MedicalRequestQuery {
	query := (&MedicalRequestClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(requestitem.Table, requestitem.FieldID, id),
			sqlgraph.To(medicalrequest.Table, medicalrequest.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, requestitem.RequestTable, requestitem.RequestColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RequestItemClient) Hooks() []Hook {
	return c.hooks.RequestItem
}

// Interceptors returns the client interceptors.
func (c *RequestItemClient) Interceptors() []Interceptor {
	return c.inters.RequestItem
}

func (c *RequestItemClient) mutate(ctx context.Context, m *RequestItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RequestItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RequestItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RequestItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RequestItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown RequestItem mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id uuid.UUID) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id uuid.UUID) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id uuid.UUID) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRequests queries the requests edge of a User.
func (c *UserClient) QueryRequests(_m *User) *MedicalRequestQuery {
	query := (&MedicalRequestClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(medicalrequest.Table, medicalrequest.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.RequestsTable, user.RequestsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAssignedRequests queries the assigned_requests edge of a User.
func (c *UserClient) QueryAssignedRequests(_m *User) *MedicalRequestQuery {
	query := (&MedicalRequestClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(medicalrequest.Table, medicalrequest.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.AssignedRequestsTable, user.AssignedRequestsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown User mutation op: %q", m.Op())
	}
}

// UserSessionClient is a client for the UserSession schema.
type UserSessionClient struct {
	config
}

// NewUserSessionClient returns a client for the UserSession from the given config.
func NewUserSessionClient(c config) *UserSessionClient {
	return &UserSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `usersession.Hooks(f(g(h())))`.
func (c *UserSessionClient) Use(hooks ...Hook) {
	c.hooks.UserSession = append(c.hooks.UserSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `usersession.Intercept(f(g(h())))`.
func (c *UserSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserSession = append(c.inters.UserSession, interceptors...)
}

// Create returns a builder for creating a UserSession entity.
func (c *UserSessionClient) Create() *UserSessionCreate {
	mutation := newUserSessionMutation(c.config, OpCreate)
	return &UserSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserSession entities.
func (c *UserSessionClient) CreateBulk(builders ...*UserSessionCreate) *UserSessionCreateBulk {
	return &UserSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserSessionClient) MapCreateBulk(slice any, setFunc func(*UserSessionCreate, int)) *UserSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserSessionCreateBulk{err: fmt.Errorf("calling to UserSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserSession.
func (c *UserSessionClient) Update() *UserSessionUpdate {
	mutation := newUserSessionMutation(c.config, OpUpdate)
	return &UserSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserSessionClient) UpdateOne(_m *UserSession) *UserSessionUpdateOne {
	mutation := newUserSessionMutation(c.config, OpUpdateOne, withUserSession(_m))
	return &UserSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserSessionClient) UpdateOneID(id uuid.UUID) *UserSessionUpdateOne {
	mutation := newUserSessionMutation(c.config, OpUpdateOne, withUserSessionID(id))
	return &UserSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserSession.
func (c *UserSessionClient) Delete() *UserSessionDelete {
	mutation := newUserSessionMutation(c.config, OpDelete)
	return &UserSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserSessionClient) DeleteOne(_m *UserSession) *UserSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserSessionClient) DeleteOneID(id uuid.UUID) *UserSessionDeleteOne {
	builder := c.Delete().Where(usersession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserSessionDeleteOne{builder}
}

// Query returns a query builder for UserSession.
func (c *UserSessionClient) Query() *UserSessionQuery {
	return &UserSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserSession},
		inters: c.Interceptors(),
	}
}

// Get returns a UserSession entity by its id.
func (c *UserSessionClient) Get(ctx context.Context, id uuid.UUID) (*UserSession, error) {
	return c.Query().Where(usersession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserSessionClient) GetX(ctx context.Context, id uuid.UUID) *UserSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a UserSession.
func (c *UserSessionClient) QueryUser(_m *UserSession) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(usersession.Table, usersession.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, usersession.UserTable, usersession.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserSessionClient) Hooks() []Hook {
	return c.hooks.UserSession
}

// Interceptors returns the client interceptors.
func (c *UserSessionClient) Interceptors() []Interceptor {
	return c.inters.UserSession
}

func (c *UserSessionClient) mutate(ctx context.Context, m *UserSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown UserSession mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		MedicalRequest, Notification, NotificationPref, OutboxMessage, Payment,
		PlatformSetting, RequestItem, User, UserSession []ent.Hook
	}
	inters struct {
		MedicalRequest, Notification, NotificationPref, OutboxMessage, Payment,
		PlatformSetting, RequestItem, User, UserSession []ent.Interceptor
	}
)
