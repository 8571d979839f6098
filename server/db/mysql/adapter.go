// Package mysql is a database adapter for MySQL.
package mysql

import (
	"database/sql"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	ms "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/sycs/chat/server/store"
	t "github.com/sycs/chat/server/store/types"
)

// adapter holds MySQL connection data.
type adapter struct {
	db         *sqlx.DB
	dsn        string
	dbName     string
	maxResults int
	version    int
}

const (
	defaultDSN      = "root:@tcp(localhost:3306)/sycschat?parseTime=true"
	defaultDatabase = "sycschat"

	adpVersion = 100

	adapterName = "mysql"

	defaultMaxResults = 1024
)

type configType struct {
	DSN      string `json:"dsn,omitempty"`
	Database string `json:"database,omitempty"`

	// Connection pool settings.
	MaxOpenConns    int `json:"max_open_conns,omitempty"`
	MaxIdleConns    int `json:"max_idle_conns,omitempty"`
	ConnMaxLifetime int `json:"conn_max_lifetime,omitempty"`
}

// Open initializes the MySQL session.
func (a *adapter) Open(jsonconfig json.RawMessage) error {
	if a.db != nil {
		return errors.New("mysql adapter is already connected")
	}

	var err error
	var config configType
	if len(jsonconfig) > 0 {
		if err = json.Unmarshal(jsonconfig, &config); err != nil {
			return errors.New("mysql adapter failed to parse config: " + err.Error())
		}
	}

	a.dsn = config.DSN
	if a.dsn == "" {
		a.dsn = defaultDSN
	}
	a.dbName = config.Database
	if a.dbName == "" {
		a.dbName = defaultDatabase
	}

	if a.maxResults <= 0 {
		a.maxResults = defaultMaxResults
	}

	// This just initializes the driver but does not open the network connection.
	a.db, err = sqlx.Open("mysql", a.dsn)
	if err != nil {
		return err
	}

	// Actually opening the network connection.
	err = a.db.Ping()
	if isMissingDb(err) {
		// Ignore missing database here. If we are initializing the database
		// missing DB is OK.
		err = nil
	}
	if err == nil {
		if config.MaxOpenConns > 0 {
			a.db.SetMaxOpenConns(config.MaxOpenConns)
		}
		if config.MaxIdleConns > 0 {
			a.db.SetMaxIdleConns(config.MaxIdleConns)
		}
		if config.ConnMaxLifetime > 0 {
			a.db.SetConnMaxLifetime(time.Duration(config.ConnMaxLifetime) * time.Second)
		}
	}
	return err
}

// Close closes the underlying database connection.
func (a *adapter) Close() error {
	var err error
	if a.db != nil {
		err = a.db.Close()
		a.db = nil
		a.version = -1
	}
	return err
}

// IsOpen returns true if connection to database has been established.
// It does not check if connection is actually live.
func (a *adapter) IsOpen() bool {
	return a.db != nil
}

// GetDbVersion returns current database version.
func (a *adapter) GetDbVersion() (int, error) {
	if a.version > 0 {
		return a.version, nil
	}

	var vers string
	err := a.db.Get(&vers, "SELECT `value` FROM kvmeta WHERE `key`='version'")
	if err != nil {
		if err == sql.ErrNoRows || isMissingTable(err) || isMissingDb(err) {
			err = errors.New("Database not initialized")
		}
		return -1, err
	}
	a.version, _ = strconv.Atoi(vers)

	return a.version, nil
}

// CheckDbVersion checks whether the actual DB version matches the expected version of this adapter.
func (a *adapter) CheckDbVersion() error {
	version, err := a.GetDbVersion()
	if err != nil {
		return err
	}

	if version != adpVersion {
		return errors.New("Invalid database version " + strconv.Itoa(version) +
			". Expected " + strconv.Itoa(adpVersion))
	}

	return nil
}

// Version returns adapter version.
func (a *adapter) Version() int {
	return adpVersion
}

// GetName returns string that adapter uses to register itself with store.
func (a *adapter) GetName() string {
	return adapterName
}

// SetMaxResults configures how many results can be returned in a single DB call.
func (a *adapter) SetMaxResults(val int) error {
	if val <= 0 {
		a.maxResults = defaultMaxResults
	} else {
		a.maxResults = val
	}

	return nil
}

// CreateDb initializes the storage.
func (a *adapter) CreateDb(reset bool) error {
	var err error
	var tx *sql.Tx

	// Can't use an existing connection because it's configured with the
	// dbname which may not exist yet.
	a.db.Close()
	if a.db, err = sqlx.Open("mysql", a.dsn); err != nil {
		return err
	}

	if tx, err = a.db.Begin(); err != nil {
		return err
	}

	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if reset {
		if _, err = tx.Exec("DROP DATABASE IF EXISTS " + a.dbName); err != nil {
			return err
		}
	}

	if _, err = tx.Exec("CREATE DATABASE " + a.dbName +
		" CHARACTER SET utf8mb4 COLLATE utf8mb4_unicode_ci"); err != nil {
		return err
	}

	if _, err = tx.Exec("USE " + a.dbName); err != nil {
		return err
	}

	if _, err = tx.Exec(
		`CREATE TABLE kvmeta(
			` + "`key`" + ` CHAR(32),
			` + "`value`" + ` TEXT,
			PRIMARY KEY(` + "`key`" + `)
		)`); err != nil {
		return err
	}
	if _, err = tx.Exec("INSERT INTO kvmeta(`key`, `value`) VALUES('version', ?)",
		adpVersion); err != nil {
		return err
	}

	if _, err = tx.Exec(
		`CREATE TABLE users(
			id         BIGINT NOT NULL,
			createdat  DATETIME(3) NOT NULL,
			updatedat  DATETIME(3) NOT NULL,
			handle     VARCHAR(32) NOT NULL,
			username   VARCHAR(32) NOT NULL,
			email      VARCHAR(192) NOT NULL,
			public     JSON,
			decoration JSON,
			PRIMARY KEY(id),
			UNIQUE INDEX users_handle(handle),
			UNIQUE INDEX users_username(username),
			UNIQUE INDEX users_email(email)
		)`); err != nil {
		return err
	}

	// Indexed user authentication records.
	if _, err = tx.Exec(
		`CREATE TABLE auth(
			uname   VARCHAR(224) NOT NULL,
			userid  BIGINT NOT NULL,
			secret  VARBINARY(255) NOT NULL,
			expires DATETIME,
			PRIMARY KEY(uname),
			FOREIGN KEY(userid) REFERENCES users(id)
		)`); err != nil {
		return err
	}

	if _, err = tx.Exec(
		`CREATE TABLE threads(
			id               BIGINT NOT NULL,
			createdat        DATETIME(3) NOT NULL,
			updatedat        DATETIME(3) NOT NULL,
			title            VARCHAR(255) NOT NULL,
			creatorid        BIGINT NOT NULL,
			visibility       VARCHAR(16) NOT NULL,
			spamcheck        TINYINT NOT NULL DEFAULT 0,
			modenabled       TINYINT NOT NULL DEFAULT 0,
			allowmsgdelete   TINYINT NOT NULL DEFAULT 1,
			allowattachments TINYINT NOT NULL DEFAULT 1,
			PRIMARY KEY(id),
			FOREIGN KEY(creatorid) REFERENCES users(id)
		)`); err != nil {
		return err
	}

	// Reply pointer parentid is a weak reference, no FK: it's allowed to
	// dangle after the parent message is deleted.
	if _, err = tx.Exec(
		`CREATE TABLE messages(
			id             BIGINT NOT NULL,
			createdat      DATETIME(3) NOT NULL,
			updatedat      DATETIME(3) NOT NULL,
			threadid       BIGINT NOT NULL,
			senderid       BIGINT NOT NULL,
			parentid       BIGINT,
			pinned         TINYINT NOT NULL DEFAULT 0,
			content        TEXT NOT NULL,
			attachmenturl  VARCHAR(1024),
			attachmentname VARCHAR(255),
			PRIMARY KEY(id),
			FOREIGN KEY(threadid) REFERENCES threads(id),
			FOREIGN KEY(senderid) REFERENCES users(id),
			INDEX messages_threadid(threadid)
		)`); err != nil {
		return err
	}

	if _, err = tx.Exec(
		`CREATE TABLE messageedits(
			id        INT NOT NULL AUTO_INCREMENT,
			messageid BIGINT NOT NULL,
			content   TEXT NOT NULL,
			createdat DATETIME(3) NOT NULL,
			PRIMARY KEY(id),
			FOREIGN KEY(messageid) REFERENCES messages(id) ON DELETE CASCADE,
			INDEX messageedits_messageid(messageid)
		)`); err != nil {
		return err
	}

	if _, err = tx.Exec(
		`CREATE TABLE friendrequests(
			id         CHAR(11) NOT NULL,
			senderid   BIGINT NOT NULL,
			receiverid BIGINT NOT NULL,
			createdat  DATETIME(3) NOT NULL,
			PRIMARY KEY(id),
			UNIQUE INDEX friendrequests_pair(senderid, receiverid),
			FOREIGN KEY(senderid) REFERENCES users(id),
			FOREIGN KEY(receiverid) REFERENCES users(id)
		)`); err != nil {
		return err
	}

	// The pair is always stored with the smaller id first.
	if _, err = tx.Exec(
		`CREATE TABLE friendships(
			id        CHAR(11) NOT NULL,
			userlo    BIGINT NOT NULL,
			userhi    BIGINT NOT NULL,
			createdat DATETIME(3) NOT NULL,
			PRIMARY KEY(id),
			UNIQUE INDEX friendships_pair(userlo, userhi),
			FOREIGN KEY(userlo) REFERENCES users(id),
			FOREIGN KEY(userhi) REFERENCES users(id)
		)`); err != nil {
		return err
	}

	if _, err = tx.Exec(
		`CREATE TABLE blocks(
			id        CHAR(11) NOT NULL,
			blockerid BIGINT NOT NULL,
			blockedid BIGINT NOT NULL,
			createdat DATETIME(3) NOT NULL,
			PRIMARY KEY(id),
			UNIQUE INDEX blocks_pair(blockerid, blockedid),
			FOREIGN KEY(blockerid) REFERENCES users(id),
			FOREIGN KEY(blockedid) REFERENCES users(id)
		)`); err != nil {
		return err
	}

	if _, err = tx.Exec(
		`CREATE TABLE dmchannels(
			id        BIGINT NOT NULL,
			createdat DATETIME(3) NOT NULL,
			updatedat DATETIME(3) NOT NULL,
			pairkey   CHAR(24) NOT NULL,
			PRIMARY KEY(id),
			UNIQUE INDEX dmchannels_pairkey(pairkey)
		)`); err != nil {
		return err
	}

	if _, err = tx.Exec(
		`CREATE TABLE dmparticipants(
			channelid BIGINT NOT NULL,
			userid    BIGINT NOT NULL,
			PRIMARY KEY(channelid, userid),
			FOREIGN KEY(channelid) REFERENCES dmchannels(id) ON DELETE CASCADE,
			FOREIGN KEY(userid) REFERENCES users(id),
			INDEX dmparticipants_userid(userid)
		)`); err != nil {
		return err
	}

	if _, err = tx.Exec(
		`CREATE TABLE dmmessages(
			id             BIGINT NOT NULL,
			createdat      DATETIME(3) NOT NULL,
			updatedat      DATETIME(3) NOT NULL,
			channelid      BIGINT NOT NULL,
			senderid       BIGINT NOT NULL,
			parentid       BIGINT,
			content        TEXT NOT NULL,
			attachmenturl  VARCHAR(1024),
			attachmentname VARCHAR(255),
			PRIMARY KEY(id),
			FOREIGN KEY(channelid) REFERENCES dmchannels(id),
			FOREIGN KEY(senderid) REFERENCES users(id),
			INDEX dmmessages_channelid(channelid)
		)`); err != nil {
		return err
	}

	if _, err = tx.Exec(
		`CREATE TABLE dmmessageedits(
			id        INT NOT NULL AUTO_INCREMENT,
			messageid BIGINT NOT NULL,
			content   TEXT NOT NULL,
			createdat DATETIME(3) NOT NULL,
			PRIMARY KEY(id),
			FOREIGN KEY(messageid) REFERENCES dmmessages(id) ON DELETE CASCADE,
			INDEX dmmessageedits_messageid(messageid)
		)`); err != nil {
		return err
	}

	// Seed the system account and the default hub thread. The hub is the
	// well-known thread 1 every fresh install starts with.
	now := t.TimeNow()
	if _, err = tx.Exec(
		"INSERT INTO users(id,createdat,updatedat,handle,username,email,public) "+
			"VALUES(1,?,?,'system','system','system@localhost',?)",
		now, now, toJSON(map[string]interface{}{"fn": "System"})); err != nil {
		return err
	}
	if _, err = tx.Exec(
		"INSERT INTO threads(id,createdat,updatedat,title,creatorid,visibility,"+
			"spamcheck,modenabled,allowmsgdelete,allowattachments) "+
			"VALUES(1,?,?,'Hub',1,'public',0,0,1,1)",
		now, now); err != nil {
		return err
	}

	return tx.Commit()
}

// UpgradeDb upgrades the database, if necessary.
func (a *adapter) UpgradeDb() error {
	if _, err := a.GetDbVersion(); err != nil {
		return err
	}

	// No upgrade paths from earlier versions yet.

	if a.version != adpVersion {
		return errors.New("Failed to perform database upgrade to version " +
			strconv.Itoa(adpVersion) + ". DB is still at " + strconv.Itoa(a.version))
	}
	return nil
}

func (a *adapter) bumpVersion(tx *sqlx.Tx, toVersion int) error {
	if _, err := tx.Exec("UPDATE kvmeta SET `value`=? WHERE `key`='version'",
		toVersion); err != nil {
		return err
	}

	a.version = toVersion
	return nil
}

// Stats returns DB connection stats object.
func (a *adapter) Stats() interface{} {
	if a.db == nil {
		return nil
	}
	return a.db.Stats()
}

// UserCreate creates a new user.
func (a *adapter) UserCreate(user *t.User) error {
	_, err := a.db.Exec(
		"INSERT INTO users(id,createdat,updatedat,handle,username,email,public,decoration) "+
			"VALUES(?,?,?,?,?,?,?,?)",
		store.DecodeUid(user.Uid()), user.CreatedAt, user.UpdatedAt,
		user.Handle, user.Username, user.Email,
		toJSON(user.Public), toJSON(user.Decoration))
	if isDupe(err) {
		return t.ErrDuplicate
	}
	return err
}

func (a *adapter) userScanRow(row *sqlx.Row) (*t.User, error) {
	var user t.User
	var id int64
	var public, decoration []byte
	err := row.Scan(&id, &user.CreatedAt, &user.UpdatedAt,
		&user.Handle, &user.Username, &user.Email, &public, &decoration)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	user.SetUid(store.EncodeUid(id))
	user.Public = fromJSON(public)
	user.Decoration = fromJSON(decoration)
	return &user, nil
}

const userColumns = "id,createdat,updatedat,handle,username,email,public,decoration"

// UserGet fetches a single user by user id.
func (a *adapter) UserGet(uid t.Uid) (*t.User, error) {
	row := a.db.QueryRowx("SELECT "+userColumns+" FROM users WHERE id=?",
		store.DecodeUid(uid))
	return a.userScanRow(row)
}

// UserGetAll returns user records for a given list of user IDs.
func (a *adapter) UserGetAll(ids ...t.Uid) ([]t.User, error) {
	uids := make([]interface{}, len(ids))
	for i, id := range ids {
		uids[i] = store.DecodeUid(id)
	}

	users := []t.User{}
	q, args, _ := sqlx.In("SELECT "+userColumns+" FROM users WHERE id IN (?)", uids)
	rows, err := a.db.Queryx(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var user t.User
		var id int64
		var public, decoration []byte
		if err = rows.Scan(&id, &user.CreatedAt, &user.UpdatedAt,
			&user.Handle, &user.Username, &user.Email, &public, &decoration); err != nil {
			return nil, err
		}
		user.SetUid(store.EncodeUid(id))
		user.Public = fromJSON(public)
		user.Decoration = fromJSON(decoration)
		users = append(users, user)
	}
	return users, rows.Err()
}

// UserFind resolves a user by handle or username.
func (a *adapter) UserFind(handleOrUsername string) (*t.User, error) {
	row := a.db.QueryRowx(
		"SELECT "+userColumns+" FROM users WHERE handle=? OR username=? LIMIT 1",
		handleOrUsername, handleOrUsername)
	return a.userScanRow(row)
}

// UserUpdate updates user record.
func (a *adapter) UserUpdate(uid t.Uid, update map[string]interface{}) error {
	cols, args := updateByMap(update)
	args = append(args, store.DecodeUid(uid))
	res, err := a.db.Exec("UPDATE users SET "+strings.Join(cols, ",")+" WHERE id=?", args...)
	if isDupe(err) {
		return t.ErrDuplicate
	}
	if err != nil {
		return err
	}
	if count, _ := res.RowsAffected(); count == 0 {
		return t.ErrNotFound
	}
	return nil
}

// AuthAddRecord creates a new authentication record for the given user.
func (a *adapter) AuthAddRecord(user t.Uid, scheme, unique string, secret []byte,
	expires time.Time) error {
	var exp *time.Time
	if !expires.IsZero() {
		exp = &expires
	}
	_, err := a.db.Exec("INSERT INTO auth(uname,userid,secret,expires) VALUES(?,?,?,?)",
		scheme+":"+unique, store.DecodeUid(user), secret, exp)
	if isDupe(err) {
		return t.ErrDuplicate
	}
	return err
}

// AuthGetRecord fetches an authentication record by scheme and unique value.
func (a *adapter) AuthGetRecord(scheme, unique string) (t.Uid, []byte, time.Time, error) {
	var record struct {
		Userid  int64
		Secret  []byte
		Expires *time.Time
	}
	if err := a.db.Get(&record, "SELECT userid,secret,expires FROM auth WHERE uname=?",
		scheme+":"+unique); err != nil {
		if err == sql.ErrNoRows {
			err = t.ErrNotFound
		}
		return t.ZeroUid, nil, time.Time{}, err
	}

	var expires time.Time
	if record.Expires != nil {
		expires = *record.Expires
	}
	return store.EncodeUid(record.Userid), record.Secret, expires, nil
}

// AuthUpdRecord replaces the secret of an existing authentication record.
func (a *adapter) AuthUpdRecord(user t.Uid, scheme, unique string, secret []byte,
	expires time.Time) error {
	var exp *time.Time
	if !expires.IsZero() {
		exp = &expires
	}
	res, err := a.db.Exec("UPDATE auth SET secret=?,expires=? WHERE uname=? AND userid=?",
		secret, exp, scheme+":"+unique, store.DecodeUid(user))
	if err != nil {
		return err
	}
	if count, _ := res.RowsAffected(); count == 0 {
		return t.ErrNotFound
	}
	return nil
}

// ThreadCreate creates a group thread.
func (a *adapter) ThreadCreate(thread *t.Thread) error {
	_, err := a.db.Exec(
		"INSERT INTO threads(id,createdat,updatedat,title,creatorid,visibility,"+
			"spamcheck,modenabled,allowmsgdelete,allowattachments) VALUES(?,?,?,?,?,?,?,?,?,?)",
		store.DecodeUid(thread.Uid()), thread.CreatedAt, thread.UpdatedAt,
		thread.Title, store.DecodeUid(thread.CreatorId), string(thread.Visibility),
		thread.Flags.SpamCheck, thread.Flags.ModEnabled,
		thread.Flags.AllowMsgDelete, thread.Flags.AllowAttachments)
	return err
}

const threadColumns = "id,createdat,updatedat,title,creatorid,visibility," +
	"spamcheck,modenabled,allowmsgdelete,allowattachments"

func threadScan(scanner interface {
	Scan(dest ...interface{}) error
}) (*t.Thread, error) {
	var thread t.Thread
	var id, creator int64
	var visibility string
	err := scanner.Scan(&id, &thread.CreatedAt, &thread.UpdatedAt, &thread.Title,
		&creator, &visibility, &thread.Flags.SpamCheck, &thread.Flags.ModEnabled,
		&thread.Flags.AllowMsgDelete, &thread.Flags.AllowAttachments)
	if err != nil {
		return nil, err
	}
	thread.SetUid(store.EncodeUid(id))
	thread.CreatorId = store.EncodeUid(creator)
	thread.Visibility = t.ThreadVisibility(visibility)
	return &thread, nil
}

// ThreadGet fetches a single thread.
func (a *adapter) ThreadGet(id t.Uid) (*t.Thread, error) {
	row := a.db.QueryRowx("SELECT "+threadColumns+" FROM threads WHERE id=?",
		store.DecodeUid(id))
	thread, err := threadScan(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return thread, err
}

// ThreadGetAll returns all threads, newest first.
func (a *adapter) ThreadGetAll() ([]t.Thread, error) {
	rows, err := a.db.Queryx("SELECT " + threadColumns +
		" FROM threads ORDER BY createdat DESC LIMIT " + strconv.Itoa(a.maxResults))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	threads := []t.Thread{}
	for rows.Next() {
		thread, err := threadScan(rows)
		if err != nil {
			return nil, err
		}
		threads = append(threads, *thread)
	}
	return threads, rows.Err()
}

// ThreadUpdate updates thread record.
func (a *adapter) ThreadUpdate(id t.Uid, update map[string]interface{}) error {
	cols, args := updateByMap(update)
	args = append(args, store.DecodeUid(id))
	res, err := a.db.Exec("UPDATE threads SET "+strings.Join(cols, ",")+" WHERE id=?",
		args...)
	if err != nil {
		return err
	}
	if count, _ := res.RowsAffected(); count == 0 {
		return t.ErrNotFound
	}
	return nil
}

// ThreadDelete removes the thread and all its messages in one transaction.
// Edit history rows cascade away with their messages.
func (a *adapter) ThreadDelete(id t.Uid) error {
	tx, err := a.db.Beginx()
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	decId := store.DecodeUid(id)
	if _, err = tx.Exec("DELETE FROM messageedits WHERE messageid IN "+
		"(SELECT id FROM messages WHERE threadid=?)", decId); err != nil {
		return err
	}
	if _, err = tx.Exec("DELETE FROM messages WHERE threadid=?", decId); err != nil {
		return err
	}
	var res sql.Result
	if res, err = tx.Exec("DELETE FROM threads WHERE id=?", decId); err != nil {
		return err
	}
	if count, _ := res.RowsAffected(); count == 0 {
		err = t.ErrNotFound
		return err
	}

	return tx.Commit()
}

// MessageSave saves a new thread message.
func (a *adapter) MessageSave(msg *t.Message) error {
	var parent interface{}
	if !msg.ParentId.IsZero() {
		parent = store.DecodeUid(msg.ParentId)
	}
	var attUrl, attName interface{}
	if msg.Attachment != nil {
		attUrl = msg.Attachment.Url
		attName = msg.Attachment.Name
	}
	_, err := a.db.Exec(
		"INSERT INTO messages(id,createdat,updatedat,threadid,senderid,parentid,"+
			"pinned,content,attachmenturl,attachmentname) VALUES(?,?,?,?,?,?,?,?,?,?)",
		store.DecodeUid(msg.Uid()), msg.CreatedAt, msg.UpdatedAt,
		store.DecodeUid(msg.ThreadId), store.DecodeUid(msg.SenderId), parent,
		msg.Pinned, msg.Content, attUrl, attName)
	return err
}

const messageColumns = "m.id,m.createdat,m.updatedat,m.threadid,m.senderid," +
	"m.parentid,m.pinned,m.content,m.attachmenturl,m.attachmentname," +
	"u.handle,u.username,u.public"

func messageScan(scanner interface {
	Scan(dest ...interface{}) error
}) (*t.Message, error) {
	var msg t.Message
	var id, threadId, senderId int64
	var parentId sql.NullInt64
	var attUrl, attName sql.NullString
	var sender t.Profile
	var public []byte

	err := scanner.Scan(&id, &msg.CreatedAt, &msg.UpdatedAt, &threadId, &senderId,
		&parentId, &msg.Pinned, &msg.Content, &attUrl, &attName,
		&sender.Handle, &sender.Username, &public)
	if err != nil {
		return nil, err
	}
	msg.SetUid(store.EncodeUid(id))
	msg.ThreadId = store.EncodeUid(threadId)
	msg.SenderId = store.EncodeUid(senderId)
	if parentId.Valid {
		msg.ParentId = store.EncodeUid(parentId.Int64)
	}
	if attUrl.Valid {
		msg.Attachment = &t.Attachment{Url: attUrl.String, Name: attName.String}
	}
	sender.Id = msg.SenderId.String()
	sender.Public = fromJSON(public)
	msg.Sender = &sender
	return &msg, nil
}

// MessageGet fetches a single message joined with the sender's profile.
func (a *adapter) MessageGet(id t.Uid) (*t.Message, error) {
	row := a.db.QueryRowx("SELECT "+messageColumns+
		" FROM messages AS m JOIN users AS u ON u.id=m.senderid WHERE m.id=?",
		store.DecodeUid(id))
	msg, err := messageScan(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return msg, err
}

// MessageGetAll returns the thread's messages, pinned first then by
// creation time ascending.
func (a *adapter) MessageGetAll(threadId t.Uid) ([]t.Message, error) {
	rows, err := a.db.Queryx("SELECT "+messageColumns+
		" FROM messages AS m JOIN users AS u ON u.id=m.senderid WHERE m.threadid=?"+
		" ORDER BY m.pinned DESC, m.createdat ASC LIMIT "+strconv.Itoa(a.maxResults),
		store.DecodeUid(threadId))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	msgs := []t.Message{}
	for rows.Next() {
		msg, err := messageScan(rows)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, *msg)
	}
	return msgs, rows.Err()
}

// MessageUpdateContent appends the current content to the edit history
// then overwrites it, in one transaction.
func (a *adapter) MessageUpdateContent(id t.Uid, content string) error {
	return a.messageEdit("messages", "messageedits", store.DecodeUid(id), content)
}

// messageEdit is the shared history-then-update sequence for thread and DM
// messages. History is captured before the overwrite so the pre-edit
// content is never lost.
func (a *adapter) messageEdit(table, editsTable string, decId int64, content string) error {
	tx, err := a.db.Beginx()
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	var current string
	if err = tx.Get(&current, "SELECT content FROM "+table+" WHERE id=? FOR UPDATE",
		decId); err != nil {
		if err == sql.ErrNoRows {
			err = t.ErrNotFound
		}
		return err
	}

	now := t.TimeNow()
	if _, err = tx.Exec("INSERT INTO "+editsTable+"(messageid,content,createdat) "+
		"VALUES(?,?,?)", decId, current, now); err != nil {
		return err
	}
	if _, err = tx.Exec("UPDATE "+table+" SET content=?,updatedat=? WHERE id=?",
		content, now, decId); err != nil {
		return err
	}

	return tx.Commit()
}

// MessagePin sets or clears the pinned flag.
func (a *adapter) MessagePin(id t.Uid, pinned bool) error {
	res, err := a.db.Exec("UPDATE messages SET pinned=?,updatedat=? WHERE id=?",
		pinned, t.TimeNow(), store.DecodeUid(id))
	if err != nil {
		return err
	}
	if count, _ := res.RowsAffected(); count == 0 {
		return t.ErrNotFound
	}
	return nil
}

// MessageDelete removes a message. Edit history cascades away.
func (a *adapter) MessageDelete(id t.Uid) error {
	res, err := a.db.Exec("DELETE FROM messages WHERE id=?", store.DecodeUid(id))
	if err != nil {
		return err
	}
	if count, _ := res.RowsAffected(); count == 0 {
		return t.ErrNotFound
	}
	return nil
}

// MessageEditHistory returns edit records, most recent first.
func (a *adapter) MessageEditHistory(id t.Uid) ([]t.MessageEdit, error) {
	return a.editHistory("messageedits", store.DecodeUid(id), id)
}

func (a *adapter) editHistory(editsTable string, decId int64, msgId t.Uid) ([]t.MessageEdit, error) {
	rows, err := a.db.Queryx("SELECT id,content,createdat FROM "+editsTable+
		" WHERE messageid=? ORDER BY createdat DESC, id DESC", decId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	edits := []t.MessageEdit{}
	for rows.Next() {
		var edit t.MessageEdit
		var editId int64
		if err = rows.Scan(&editId, &edit.Content, &edit.CreatedAt); err != nil {
			return nil, err
		}
		edit.Id = strconv.FormatInt(editId, 10)
		edit.MessageId = msgId
		edits = append(edits, edit)
	}
	return edits, rows.Err()
}

// FriendRequestCreate inserts a pending friend request.
func (a *adapter) FriendRequestCreate(req *t.FriendRequest) error {
	_, err := a.db.Exec(
		"INSERT INTO friendrequests(id,senderid,receiverid,createdat) VALUES(?,?,?,?)",
		req.Id, store.DecodeUid(req.SenderId), store.DecodeUid(req.ReceiverId),
		req.CreatedAt)
	if isDupe(err) {
		return t.ErrDuplicate
	}
	return err
}

// FriendRequestGet fetches a single pending request by id.
func (a *adapter) FriendRequestGet(id string) (*t.FriendRequest, error) {
	var req t.FriendRequest
	var sender, receiver int64
	err := a.db.QueryRowx(
		"SELECT id,senderid,receiverid,createdat FROM friendrequests WHERE id=?", id).
		Scan(&req.Id, &sender, &receiver, &req.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	req.SenderId = store.EncodeUid(sender)
	req.ReceiverId = store.EncodeUid(receiver)
	return &req, nil
}

// FriendRequestGetPending fetches a pending request between two users in
// either direction.
func (a *adapter) FriendRequestGetPending(u1, u2 t.Uid) (*t.FriendRequest, error) {
	dec1, dec2 := store.DecodeUid(u1), store.DecodeUid(u2)
	var req t.FriendRequest
	var sender, receiver int64
	err := a.db.QueryRowx(
		"SELECT id,senderid,receiverid,createdat FROM friendrequests "+
			"WHERE (senderid=? AND receiverid=?) OR (senderid=? AND receiverid=?) LIMIT 1",
		dec1, dec2, dec2, dec1).
		Scan(&req.Id, &sender, &receiver, &req.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	req.SenderId = store.EncodeUid(sender)
	req.ReceiverId = store.EncodeUid(receiver)
	return &req, nil
}

// FriendRequestsForUser lists pending requests with counterparty profiles.
func (a *adapter) FriendRequestsForUser(uid t.Uid, incoming bool) ([]t.FriendRequest, error) {
	join := "u.id=r.senderid"
	where := "r.receiverid=?"
	if !incoming {
		join = "u.id=r.receiverid"
		where = "r.senderid=?"
	}

	rows, err := a.db.Queryx(
		"SELECT r.id,r.senderid,r.receiverid,r.createdat,u.handle,u.username,u.public "+
			"FROM friendrequests AS r JOIN users AS u ON "+join+" WHERE "+where+
			" ORDER BY r.createdat DESC", store.DecodeUid(uid))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reqs := []t.FriendRequest{}
	for rows.Next() {
		var req t.FriendRequest
		var sender, receiver int64
		var other t.Profile
		var public []byte
		if err = rows.Scan(&req.Id, &sender, &receiver, &req.CreatedAt,
			&other.Handle, &other.Username, &public); err != nil {
			return nil, err
		}
		req.SenderId = store.EncodeUid(sender)
		req.ReceiverId = store.EncodeUid(receiver)
		other.Public = fromJSON(public)
		if incoming {
			other.Id = req.SenderId.String()
			req.Sender = &other
		} else {
			other.Id = req.ReceiverId.String()
			req.Receiver = &other
		}
		reqs = append(reqs, req)
	}
	return reqs, rows.Err()
}

// FriendRequestApprove inserts the friendship and deletes the request in
// one transaction.
func (a *adapter) FriendRequestApprove(reqId string, friendship *t.Friendship) error {
	tx, err := a.db.Beginx()
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	var res sql.Result
	if res, err = tx.Exec("DELETE FROM friendrequests WHERE id=?", reqId); err != nil {
		return err
	}
	if count, _ := res.RowsAffected(); count == 0 {
		err = t.ErrNotFound
		return err
	}

	if _, err = tx.Exec("INSERT INTO friendships(id,userlo,userhi,createdat) VALUES(?,?,?,?)",
		friendship.Id, store.DecodeUid(friendship.UserLo),
		store.DecodeUid(friendship.UserHi), friendship.CreatedAt); err != nil {
		if isDupe(err) {
			err = t.ErrDuplicate
		}
		return err
	}

	return tx.Commit()
}

// FriendRequestDelete removes a pending request.
func (a *adapter) FriendRequestDelete(id string) error {
	res, err := a.db.Exec("DELETE FROM friendrequests WHERE id=?", id)
	if err != nil {
		return err
	}
	if count, _ := res.RowsAffected(); count == 0 {
		return t.ErrNotFound
	}
	return nil
}

// FriendshipGet fetches the friendship row for a pair of users. The input
// order does not matter.
func (a *adapter) FriendshipGet(u1, u2 t.Uid) (*t.Friendship, error) {
	lo, hi := t.NormalizePair(u1, u2)
	var friendship t.Friendship
	var decLo, decHi int64
	err := a.db.QueryRowx(
		"SELECT id,userlo,userhi,createdat FROM friendships WHERE userlo=? AND userhi=?",
		store.DecodeUid(lo), store.DecodeUid(hi)).
		Scan(&friendship.Id, &decLo, &decHi, &friendship.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	friendship.UserLo = store.EncodeUid(decLo)
	friendship.UserHi = store.EncodeUid(decHi)
	return &friendship, nil
}

// FriendshipDelete removes the friendship between two users.
func (a *adapter) FriendshipDelete(u1, u2 t.Uid) error {
	lo, hi := t.NormalizePair(u1, u2)
	res, err := a.db.Exec("DELETE FROM friendships WHERE userlo=? AND userhi=?",
		store.DecodeUid(lo), store.DecodeUid(hi))
	if err != nil {
		return err
	}
	if count, _ := res.RowsAffected(); count == 0 {
		return t.ErrNotFound
	}
	return nil
}

// FriendsGetAll lists the user's friends.
func (a *adapter) FriendsGetAll(uid t.Uid) ([]t.User, error) {
	decId := store.DecodeUid(uid)
	rows, err := a.db.Queryx(
		"SELECT "+userColumns+" FROM users WHERE id IN "+
			"(SELECT userhi FROM friendships WHERE userlo=? "+
			"UNION SELECT userlo FROM friendships WHERE userhi=?)",
		decId, decId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanUsers(rows)
}

func scanUsers(rows *sqlx.Rows) ([]t.User, error) {
	users := []t.User{}
	for rows.Next() {
		var user t.User
		var id int64
		var public, decoration []byte
		if err := rows.Scan(&id, &user.CreatedAt, &user.UpdatedAt,
			&user.Handle, &user.Username, &user.Email, &public, &decoration); err != nil {
			return nil, err
		}
		user.SetUid(store.EncodeUid(id))
		user.Public = fromJSON(public)
		user.Decoration = fromJSON(decoration)
		users = append(users, user)
	}
	return users, rows.Err()
}

// BlockCreate inserts a block and removes any friendship and pending
// requests between the pair in one transaction.
func (a *adapter) BlockCreate(block *t.Block) error {
	tx, err := a.db.Beginx()
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	blocker := store.DecodeUid(block.BlockerId)
	blocked := store.DecodeUid(block.BlockedId)

	if _, err = tx.Exec("INSERT INTO blocks(id,blockerid,blockedid,createdat) VALUES(?,?,?,?)",
		block.Id, blocker, blocked, block.CreatedAt); err != nil {
		if isDupe(err) {
			err = t.ErrDuplicate
		}
		return err
	}

	lo, hi := t.NormalizePair(block.BlockerId, block.BlockedId)
	if _, err = tx.Exec("DELETE FROM friendships WHERE userlo=? AND userhi=?",
		store.DecodeUid(lo), store.DecodeUid(hi)); err != nil {
		return err
	}
	if _, err = tx.Exec("DELETE FROM friendrequests WHERE "+
		"(senderid=? AND receiverid=?) OR (senderid=? AND receiverid=?)",
		blocker, blocked, blocked, blocker); err != nil {
		return err
	}

	return tx.Commit()
}

// BlockDelete removes a block.
func (a *adapter) BlockDelete(blocker, blocked t.Uid) error {
	res, err := a.db.Exec("DELETE FROM blocks WHERE blockerid=? AND blockedid=?",
		store.DecodeUid(blocker), store.DecodeUid(blocked))
	if err != nil {
		return err
	}
	if count, _ := res.RowsAffected(); count == 0 {
		return t.ErrNotFound
	}
	return nil
}

// BlockExists reports whether a block exists between two users in either direction.
func (a *adapter) BlockExists(u1, u2 t.Uid) (bool, error) {
	dec1, dec2 := store.DecodeUid(u1), store.DecodeUid(u2)
	var count int
	err := a.db.Get(&count, "SELECT COUNT(*) FROM blocks WHERE "+
		"(blockerid=? AND blockedid=?) OR (blockerid=? AND blockedid=?)",
		dec1, dec2, dec2, dec1)
	return count > 0, err
}

// BlocksGetAll lists the users blocked by the given user.
func (a *adapter) BlocksGetAll(blocker t.Uid) ([]t.User, error) {
	rows, err := a.db.Queryx(
		"SELECT "+userColumns+" FROM users WHERE id IN "+
			"(SELECT blockedid FROM blocks WHERE blockerid=?)",
		store.DecodeUid(blocker))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanUsers(rows)
}

// DMChannelGetOrCreate returns the channel for the pair, creating it on
// first contact. The unique pairkey index resolves creation races: the
// loser of a concurrent insert falls back to reading the winner's row.
func (a *adapter) DMChannelGetOrCreate(channel *t.DMChannel, u1, u2 t.Uid) (bool, error) {
	tx, err := a.db.Beginx()
	if err != nil {
		return false, err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	decId := store.DecodeUid(channel.Uid())
	if _, err = tx.Exec("INSERT INTO dmchannels(id,createdat,updatedat,pairkey) VALUES(?,?,?,?)",
		decId, channel.CreatedAt, channel.UpdatedAt, channel.PairKey); err != nil {
		if isDupe(err) {
			tx.Rollback()
			err = nil
			existing, serr := a.dmChannelByPairKey(channel.PairKey)
			if serr != nil {
				return false, serr
			}
			*channel = *existing
			return false, nil
		}
		return false, err
	}

	if _, err = tx.Exec("INSERT INTO dmparticipants(channelid,userid) VALUES(?,?),(?,?)",
		decId, store.DecodeUid(u1), decId, store.DecodeUid(u2)); err != nil {
		return false, err
	}

	if err = tx.Commit(); err != nil {
		return false, err
	}
	return true, nil
}

func (a *adapter) dmChannelByPairKey(pairKey string) (*t.DMChannel, error) {
	var channel t.DMChannel
	var id int64
	err := a.db.QueryRowx(
		"SELECT id,createdat,updatedat,pairkey FROM dmchannels WHERE pairkey=?", pairKey).
		Scan(&id, &channel.CreatedAt, &channel.UpdatedAt, &channel.PairKey)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, t.ErrNotFound
		}
		return nil, err
	}
	channel.SetUid(store.EncodeUid(id))
	return &channel, nil
}

// DMChannelGet fetches a single channel.
func (a *adapter) DMChannelGet(id t.Uid) (*t.DMChannel, error) {
	var channel t.DMChannel
	var decId int64
	err := a.db.QueryRowx(
		"SELECT id,createdat,updatedat,pairkey FROM dmchannels WHERE id=?",
		store.DecodeUid(id)).
		Scan(&decId, &channel.CreatedAt, &channel.UpdatedAt, &channel.PairKey)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	channel.SetUid(store.EncodeUid(decId))
	return &channel, nil
}

// DMChannelsForUser lists the user's channels with the other participant
// and the latest message, most recently active first.
func (a *adapter) DMChannelsForUser(uid t.Uid) ([]t.DMChannelInfo, error) {
	decId := store.DecodeUid(uid)
	rows, err := a.db.Queryx(
		"SELECT c.id,c.createdat,c.updatedat,c.pairkey,ou.id,ou.handle,ou.username,ou.public,"+
			"(SELECT m.content FROM dmmessages AS m WHERE m.channelid=c.id "+
			"ORDER BY m.createdat DESC LIMIT 1),"+
			"(SELECT m.createdat FROM dmmessages AS m WHERE m.channelid=c.id "+
			"ORDER BY m.createdat DESC LIMIT 1) "+
			"FROM dmchannels AS c "+
			"JOIN dmparticipants AS p ON p.channelid=c.id AND p.userid=? "+
			"JOIN dmparticipants AS op ON op.channelid=c.id AND op.userid!=? "+
			"JOIN users AS ou ON ou.id=op.userid "+
			"ORDER BY c.updatedat DESC LIMIT "+strconv.Itoa(a.maxResults),
		decId, decId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	infos := []t.DMChannelInfo{}
	for rows.Next() {
		var info t.DMChannelInfo
		var chanId, otherId int64
		var other t.Profile
		var public []byte
		var lastContent sql.NullString
		var lastSentAt sql.NullTime
		if err = rows.Scan(&chanId, &info.Channel.CreatedAt, &info.Channel.UpdatedAt,
			&info.Channel.PairKey, &otherId, &other.Handle, &other.Username, &public,
			&lastContent, &lastSentAt); err != nil {
			return nil, err
		}
		info.Channel.SetUid(store.EncodeUid(chanId))
		other.Id = store.EncodeUid(otherId).String()
		other.Public = fromJSON(public)
		info.Other = &other
		if lastContent.Valid {
			info.LastContent = lastContent.String
		}
		if lastSentAt.Valid {
			sentAt := lastSentAt.Time
			info.LastSentAt = &sentAt
		}
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

// DMParticipantsGet returns the participant rows of a channel.
func (a *adapter) DMParticipantsGet(channelId t.Uid) ([]t.DMParticipant, error) {
	rows, err := a.db.Queryx("SELECT channelid,userid FROM dmparticipants WHERE channelid=?",
		store.DecodeUid(channelId))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	participants := []t.DMParticipant{}
	for rows.Next() {
		var chanId, userId int64
		if err = rows.Scan(&chanId, &userId); err != nil {
			return nil, err
		}
		participants = append(participants, t.DMParticipant{
			ChannelId: store.EncodeUid(chanId),
			UserId:    store.EncodeUid(userId),
		})
	}
	return participants, rows.Err()
}

// DMMessageSave saves a new DM message and bumps the channel's update
// timestamp in one transaction.
func (a *adapter) DMMessageSave(msg *t.DMMessage) error {
	tx, err := a.db.Beginx()
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	var parent interface{}
	if !msg.ParentId.IsZero() {
		parent = store.DecodeUid(msg.ParentId)
	}
	var attUrl, attName interface{}
	if msg.Attachment != nil {
		attUrl = msg.Attachment.Url
		attName = msg.Attachment.Name
	}
	if _, err = tx.Exec(
		"INSERT INTO dmmessages(id,createdat,updatedat,channelid,senderid,parentid,"+
			"content,attachmenturl,attachmentname) VALUES(?,?,?,?,?,?,?,?,?)",
		store.DecodeUid(msg.Uid()), msg.CreatedAt, msg.UpdatedAt,
		store.DecodeUid(msg.ChannelId), store.DecodeUid(msg.SenderId), parent,
		msg.Content, attUrl, attName); err != nil {
		return err
	}

	if _, err = tx.Exec("UPDATE dmchannels SET updatedat=? WHERE id=?",
		msg.CreatedAt, store.DecodeUid(msg.ChannelId)); err != nil {
		return err
	}

	return tx.Commit()
}

const dmMessageColumns = "m.id,m.createdat,m.updatedat,m.channelid,m.senderid," +
	"m.parentid,m.content,m.attachmenturl,m.attachmentname,u.handle,u.username,u.public"

func dmMessageScan(scanner interface {
	Scan(dest ...interface{}) error
}) (*t.DMMessage, error) {
	var msg t.DMMessage
	var id, channelId, senderId int64
	var parentId sql.NullInt64
	var attUrl, attName sql.NullString
	var sender t.Profile
	var public []byte

	err := scanner.Scan(&id, &msg.CreatedAt, &msg.UpdatedAt, &channelId, &senderId,
		&parentId, &msg.Content, &attUrl, &attName,
		&sender.Handle, &sender.Username, &public)
	if err != nil {
		return nil, err
	}
	msg.SetUid(store.EncodeUid(id))
	msg.ChannelId = store.EncodeUid(channelId)
	msg.SenderId = store.EncodeUid(senderId)
	if parentId.Valid {
		msg.ParentId = store.EncodeUid(parentId.Int64)
	}
	if attUrl.Valid {
		msg.Attachment = &t.Attachment{Url: attUrl.String, Name: attName.String}
	}
	sender.Id = msg.SenderId.String()
	sender.Public = fromJSON(public)
	msg.Sender = &sender
	return &msg, nil
}

// DMMessageGet fetches a single DM message joined with the sender's profile.
func (a *adapter) DMMessageGet(id t.Uid) (*t.DMMessage, error) {
	row := a.db.QueryRowx("SELECT "+dmMessageColumns+
		" FROM dmmessages AS m JOIN users AS u ON u.id=m.senderid WHERE m.id=?",
		store.DecodeUid(id))
	msg, err := dmMessageScan(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return msg, err
}

// DMMessageGetAll returns the channel's messages by creation time ascending.
func (a *adapter) DMMessageGetAll(channelId t.Uid) ([]t.DMMessage, error) {
	rows, err := a.db.Queryx("SELECT "+dmMessageColumns+
		" FROM dmmessages AS m JOIN users AS u ON u.id=m.senderid WHERE m.channelid=?"+
		" ORDER BY m.createdat ASC LIMIT "+strconv.Itoa(a.maxResults),
		store.DecodeUid(channelId))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	msgs := []t.DMMessage{}
	for rows.Next() {
		msg, err := dmMessageScan(rows)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, *msg)
	}
	return msgs, rows.Err()
}

// DMMessageUpdateContent appends the current content to the edit history
// then overwrites it, in one transaction.
func (a *adapter) DMMessageUpdateContent(id t.Uid, content string) error {
	return a.messageEdit("dmmessages", "dmmessageedits", store.DecodeUid(id), content)
}

// DMMessageDelete removes a DM message. Edit history cascades away.
func (a *adapter) DMMessageDelete(id t.Uid) error {
	res, err := a.db.Exec("DELETE FROM dmmessages WHERE id=?", store.DecodeUid(id))
	if err != nil {
		return err
	}
	if count, _ := res.RowsAffected(); count == 0 {
		return t.ErrNotFound
	}
	return nil
}

// DMMessageEditHistory returns edit records, most recent first.
func (a *adapter) DMMessageEditHistory(id t.Uid) ([]t.MessageEdit, error) {
	return a.editHistory("dmmessageedits", store.DecodeUid(id), id)
}

// Checks if the given error is 'duplicate entry'.
func isDupe(err error) bool {
	if err == nil {
		return false
	}

	myerr, ok := err.(*ms.MySQLError)
	return ok && myerr.Number == 1062
}

func isMissingTable(err error) bool {
	if err == nil {
		return false
	}

	myerr, ok := err.(*ms.MySQLError)
	return ok && myerr.Number == 1146
}

func isMissingDb(err error) bool {
	if err == nil {
		return false
	}

	myerr, ok := err.(*ms.MySQLError)
	return ok && myerr.Number == 1049
}

// Convert update to a list of columns and arguments.
func updateByMap(update map[string]interface{}) (cols []string, args []interface{}) {
	for col, arg := range update {
		col = strings.ToLower(col)
		if col == "public" || col == "decoration" {
			arg = toJSON(arg)
		}
		cols = append(cols, col+"=?")
		args = append(args, arg)
	}
	return
}

func toJSON(src interface{}) []byte {
	if src == nil {
		return nil
	}

	jval, _ := json.Marshal(src)
	return jval
}

func fromJSON(src interface{}) interface{} {
	if src == nil {
		return nil
	}
	if bb, ok := src.([]byte); ok && len(bb) > 0 {
		var out interface{}
		json.Unmarshal(bb, &out)
		return out
	}
	return nil
}

func init() {
	store.RegisterAdapter(&adapter{})
}
