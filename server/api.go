/******************************************************************************
 *
 *  Description :
 *
 *    REST surface. Handlers parse the request, resolve the principal where
 *    the action requires one, call into the components and shape the
 *    outcome as a {ctrl} response. Thread and message reads are open;
 *    everything else requires a bearer token.
 *
 *****************************************************************************/

package main

import (
	"encoding/json"
	"net/http"

	"github.com/sycs/chat/server/logs"
	t "github.com/sycs/chat/server/store/types"
)

// API routes inbound HTTP actions to the components.
type API struct {
	users    *Users
	social   *Social
	threads  *Threads
	messages *Messages
	dms      *DMs
}

// NewAPI creates the REST surface.
func NewAPI(users *Users, social *Social, threads *Threads,
	messages *Messages, dms *DMs) *API {
	return &API{
		users:    users,
		social:   social,
		threads:  threads,
		messages: messages,
		dms:      dms,
	}
}

// Register attaches all routes to the mux.
func (a *API) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/account", a.signup)
	mux.HandleFunc("POST /v1/login", a.login)
	mux.HandleFunc("GET /v1/users/{lookup}", a.userFind)
	mux.HandleFunc("PATCH /v1/me", a.profileUpdate)

	mux.HandleFunc("POST /v1/friends/requests", a.friendRequestCreate)
	mux.HandleFunc("GET /v1/friends/requests", a.friendRequestList)
	mux.HandleFunc("PUT /v1/friends/requests/{id}", a.friendRequestApprove)
	mux.HandleFunc("DELETE /v1/friends/requests/{id}", a.friendRequestReject)
	mux.HandleFunc("GET /v1/friends", a.friendList)
	mux.HandleFunc("DELETE /v1/friends/{id}", a.friendRemove)
	mux.HandleFunc("POST /v1/blocks", a.blockCreate)
	mux.HandleFunc("GET /v1/blocks", a.blockList)
	mux.HandleFunc("DELETE /v1/blocks/{id}", a.blockRemove)

	mux.HandleFunc("POST /v1/threads", a.threadCreate)
	mux.HandleFunc("GET /v1/threads", a.threadList)
	mux.HandleFunc("GET /v1/threads/{id}", a.threadGet)
	mux.HandleFunc("PATCH /v1/threads/{id}", a.threadUpdate)
	mux.HandleFunc("DELETE /v1/threads/{id}", a.threadDelete)
	mux.HandleFunc("POST /v1/threads/{id}/messages", a.messagePost)
	mux.HandleFunc("GET /v1/threads/{id}/messages", a.messageList)
	mux.HandleFunc("GET /v1/messages/{id}", a.messageGet)
	mux.HandleFunc("PATCH /v1/messages/{id}", a.messageEdit)
	mux.HandleFunc("DELETE /v1/messages/{id}", a.messageDelete)
	mux.HandleFunc("PUT /v1/messages/{id}/pin", a.messagePin)
	mux.HandleFunc("GET /v1/messages/{id}/history", a.messageHistory)

	mux.HandleFunc("POST /v1/dm/channels", a.dmChannelOpen)
	mux.HandleFunc("GET /v1/dm/channels", a.dmChannelList)
	mux.HandleFunc("POST /v1/dm/channels/{id}/messages", a.dmMessagePost)
	mux.HandleFunc("GET /v1/dm/channels/{id}/messages", a.dmMessageList)
	mux.HandleFunc("PATCH /v1/dm/messages/{id}", a.dmMessageEdit)
	mux.HandleFunc("DELETE /v1/dm/messages/{id}", a.dmMessageDelete)
	mux.HandleFunc("GET /v1/dm/messages/{id}/history", a.dmMessageHistory)
}

// writeCtrl sends a {ctrl} response with the HTTP status matching its code.
func writeCtrl(wrt http.ResponseWriter, msg *ServerComMessage) {
	wrt.Header().Set("Content-Type", "application/json; charset=utf-8")
	wrt.WriteHeader(msg.Ctrl.Code)
	if err := json.NewEncoder(wrt).Encode(msg); err != nil {
		logs.Warning.Println("api: failed to write response", err)
	}
}

// principal resolves the bearer token into an authenticated principal.
// The token is accepted from the Authorization header or a "token" cookie.
func (a *API) principal(req *http.Request) *Principal {
	token := getBearerToken(req)
	if token == "" {
		if c, err := req.Cookie("token"); err == nil {
			token = c.Value
		}
	}
	if token == "" {
		return nil
	}

	principal, err := a.users.Authenticate(token)
	if err != nil {
		return nil
	}
	return principal
}

// pathUid decodes the {id} path segment.
func pathUid(req *http.Request) t.Uid {
	return t.ParseUid(req.PathValue("id"))
}

func decodeBody(req *http.Request, v interface{}) error {
	defer req.Body.Close()
	return json.NewDecoder(req.Body).Decode(v)
}

func (a *API) signup(wrt http.ResponseWriter, req *http.Request) {
	now := t.TimeNow()
	var body struct {
		Handle   string `json:"handle"`
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeBody(req, &body); err != nil {
		writeCtrl(wrt, ErrMalformed("", now))
		return
	}

	user, err := a.users.Signup(body.Handle, body.Username, body.Email, body.Password)
	if err != nil {
		writeCtrl(wrt, decodeStoreError(err, "", now))
		return
	}
	writeCtrl(wrt, NoErrCreated("", user.Profile(), now))
}

func (a *API) login(wrt http.ResponseWriter, req *http.Request) {
	now := t.TimeNow()
	var body struct {
		Handle   string `json:"handle"`
		Password string `json:"password"`
	}
	if err := decodeBody(req, &body); err != nil {
		writeCtrl(wrt, ErrMalformed("", now))
		return
	}

	user, token, expires, err := a.users.Login(body.Handle + ":" + body.Password)
	if err != nil {
		writeCtrl(wrt, decodeStoreError(err, "", now))
		return
	}
	writeCtrl(wrt, NoErrParams("", map[string]interface{}{
		"user":    user.Profile(),
		"token":   token,
		"expires": expires,
	}, now))
}

func (a *API) userFind(wrt http.ResponseWriter, req *http.Request) {
	now := t.TimeNow()
	profile, err := a.users.Find(req.PathValue("lookup"))
	if err != nil {
		writeCtrl(wrt, decodeStoreError(err, "", now))
		return
	}
	writeCtrl(wrt, NoErrParams("", profile, now))
}

func (a *API) profileUpdate(wrt http.ResponseWriter, req *http.Request) {
	now := t.TimeNow()
	principal := a.principal(req)
	if principal == nil {
		writeCtrl(wrt, ErrAuthRequired("", now))
		return
	}

	var update map[string]interface{}
	if err := decodeBody(req, &update); err != nil {
		writeCtrl(wrt, ErrMalformed("", now))
		return
	}

	if err := a.users.UpdateProfile(*principal, update); err != nil {
		writeCtrl(wrt, decodeStoreError(err, "", now))
		return
	}
	writeCtrl(wrt, NoErr("", now))
}

func (a *API) friendRequestCreate(wrt http.ResponseWriter, req *http.Request) {
	now := t.TimeNow()
	principal := a.principal(req)
	if principal == nil {
		writeCtrl(wrt, ErrAuthRequired("", now))
		return
	}

	var body struct {
		Target string `json:"target"`
	}
	if err := decodeBody(req, &body); err != nil || body.Target == "" {
		writeCtrl(wrt, ErrMalformed("", now))
		return
	}

	fr, err := a.social.SendFriendRequest(*principal, body.Target)
	if err != nil {
		writeCtrl(wrt, decodeStoreError(err, "", now))
		return
	}
	writeCtrl(wrt, NoErrCreated("", fr, now))
}

func (a *API) friendRequestList(wrt http.ResponseWriter, req *http.Request) {
	now := t.TimeNow()
	principal := a.principal(req)
	if principal == nil {
		writeCtrl(wrt, ErrAuthRequired("", now))
		return
	}

	incoming := req.URL.Query().Get("dir") != "outgoing"
	reqs, err := a.social.ListFriendRequests(*principal, incoming)
	if err != nil {
		writeCtrl(wrt, decodeStoreError(err, "", now))
		return
	}
	writeCtrl(wrt, NoErrParams("", reqs, now))
}

func (a *API) friendRequestApprove(wrt http.ResponseWriter, req *http.Request) {
	now := t.TimeNow()
	principal := a.principal(req)
	if principal == nil {
		writeCtrl(wrt, ErrAuthRequired("", now))
		return
	}

	friendship, err := a.social.ApproveFriendRequest(*principal, req.PathValue("id"))
	if err != nil {
		writeCtrl(wrt, decodeStoreError(err, "", now))
		return
	}
	writeCtrl(wrt, NoErrCreated("", friendship, now))
}

func (a *API) friendRequestReject(wrt http.ResponseWriter, req *http.Request) {
	now := t.TimeNow()
	principal := a.principal(req)
	if principal == nil {
		writeCtrl(wrt, ErrAuthRequired("", now))
		return
	}

	if err := a.social.RejectFriendRequest(*principal, req.PathValue("id")); err != nil {
		writeCtrl(wrt, decodeStoreError(err, "", now))
		return
	}
	writeCtrl(wrt, NoErr("", now))
}

func (a *API) friendList(wrt http.ResponseWriter, req *http.Request) {
	now := t.TimeNow()
	principal := a.principal(req)
	if principal == nil {
		writeCtrl(wrt, ErrAuthRequired("", now))
		return
	}

	friends, err := a.social.ListFriends(*principal)
	if err != nil {
		writeCtrl(wrt, decodeStoreError(err, "", now))
		return
	}
	profiles := make([]*t.Profile, len(friends))
	for i := range friends {
		profiles[i] = friends[i].Profile()
	}
	writeCtrl(wrt, NoErrParams("", profiles, now))
}

func (a *API) friendRemove(wrt http.ResponseWriter, req *http.Request) {
	now := t.TimeNow()
	principal := a.principal(req)
	if principal == nil {
		writeCtrl(wrt, ErrAuthRequired("", now))
		return
	}

	other := pathUid(req)
	if other.IsZero() {
		writeCtrl(wrt, ErrMalformed("", now))
		return
	}

	if err := a.social.RemoveFriendship(*principal, other); err != nil {
		writeCtrl(wrt, decodeStoreError(err, "", now))
		return
	}
	writeCtrl(wrt, NoErr("", now))
}

func (a *API) blockCreate(wrt http.ResponseWriter, req *http.Request) {
	now := t.TimeNow()
	principal := a.principal(req)
	if principal == nil {
		writeCtrl(wrt, ErrAuthRequired("", now))
		return
	}

	var body struct {
		User string `json:"user"`
	}
	if err := decodeBody(req, &body); err != nil {
		writeCtrl(wrt, ErrMalformed("", now))
		return
	}
	target := t.ParseUid(body.User)
	if target.IsZero() {
		writeCtrl(wrt, ErrMalformed("", now))
		return
	}

	block, err := a.social.Block(*principal, target)
	if err != nil {
		writeCtrl(wrt, decodeStoreError(err, "", now))
		return
	}
	writeCtrl(wrt, NoErrCreated("", block, now))
}

func (a *API) blockList(wrt http.ResponseWriter, req *http.Request) {
	now := t.TimeNow()
	principal := a.principal(req)
	if principal == nil {
		writeCtrl(wrt, ErrAuthRequired("", now))
		return
	}

	blocked, err := a.social.ListBlocks(*principal)
	if err != nil {
		writeCtrl(wrt, decodeStoreError(err, "", now))
		return
	}
	profiles := make([]*t.Profile, len(blocked))
	for i := range blocked {
		profiles[i] = blocked[i].Profile()
	}
	writeCtrl(wrt, NoErrParams("", profiles, now))
}

func (a *API) blockRemove(wrt http.ResponseWriter, req *http.Request) {
	now := t.TimeNow()
	principal := a.principal(req)
	if principal == nil {
		writeCtrl(wrt, ErrAuthRequired("", now))
		return
	}

	target := pathUid(req)
	if target.IsZero() {
		writeCtrl(wrt, ErrMalformed("", now))
		return
	}

	if err := a.social.Unblock(*principal, target); err != nil {
		writeCtrl(wrt, decodeStoreError(err, "", now))
		return
	}
	writeCtrl(wrt, NoErr("", now))
}

func (a *API) threadCreate(wrt http.ResponseWriter, req *http.Request) {
	now := t.TimeNow()
	principal := a.principal(req)
	if principal == nil {
		writeCtrl(wrt, ErrAuthRequired("", now))
		return
	}

	var body struct {
		Title      string        `json:"title"`
		Visibility string        `json:"visibility"`
		Flags      t.ThreadFlags `json:"flags"`
	}
	if err := decodeBody(req, &body); err != nil {
		writeCtrl(wrt, ErrMalformed("", now))
		return
	}

	thread, err := a.threads.Create(*principal, body.Title,
		t.ThreadVisibility(body.Visibility), body.Flags)
	if err != nil {
		writeCtrl(wrt, decodeStoreError(err, "", now))
		return
	}
	writeCtrl(wrt, NoErrCreated("", thread, now))
}

func (a *API) threadList(wrt http.ResponseWriter, req *http.Request) {
	now := t.TimeNow()
	threads, err := a.threads.List()
	if err != nil {
		writeCtrl(wrt, decodeStoreError(err, "", now))
		return
	}
	writeCtrl(wrt, NoErrParams("", threads, now))
}

func (a *API) threadGet(wrt http.ResponseWriter, req *http.Request) {
	now := t.TimeNow()
	id := pathUid(req)
	if id.IsZero() {
		writeCtrl(wrt, ErrMalformed("", now))
		return
	}

	thread, err := a.threads.Get(id)
	if err != nil {
		writeCtrl(wrt, decodeStoreError(err, "", now))
		return
	}
	writeCtrl(wrt, NoErrParams("", thread, now))
}

func (a *API) threadUpdate(wrt http.ResponseWriter, req *http.Request) {
	now := t.TimeNow()
	principal := a.principal(req)
	if principal == nil {
		writeCtrl(wrt, ErrAuthRequired("", now))
		return
	}

	id := pathUid(req)
	if id.IsZero() {
		writeCtrl(wrt, ErrMalformed("", now))
		return
	}

	var update map[string]interface{}
	if err := decodeBody(req, &update); err != nil {
		writeCtrl(wrt, ErrMalformed("", now))
		return
	}

	if err := a.threads.Update(*principal, id, update); err != nil {
		writeCtrl(wrt, decodeStoreError(err, "", now))
		return
	}
	writeCtrl(wrt, NoErr("", now))
}

func (a *API) threadDelete(wrt http.ResponseWriter, req *http.Request) {
	now := t.TimeNow()
	principal := a.principal(req)
	if principal == nil {
		writeCtrl(wrt, ErrAuthRequired("", now))
		return
	}

	id := pathUid(req)
	if id.IsZero() {
		writeCtrl(wrt, ErrMalformed("", now))
		return
	}

	if err := a.threads.Delete(*principal, id); err != nil {
		writeCtrl(wrt, decodeStoreError(err, "", now))
		return
	}
	writeCtrl(wrt, NoErr("", now))
}

func (a *API) messagePost(wrt http.ResponseWriter, req *http.Request) {
	now := t.TimeNow()
	principal := a.principal(req)
	if principal == nil {
		writeCtrl(wrt, ErrAuthRequired("", now))
		return
	}

	threadId := pathUid(req)
	if threadId.IsZero() {
		writeCtrl(wrt, ErrMalformed("", now))
		return
	}

	var body struct {
		Content    string        `json:"content"`
		Parent     string        `json:"parent,omitempty"`
		Attachment *t.Attachment `json:"attachment,omitempty"`
	}
	if err := decodeBody(req, &body); err != nil {
		writeCtrl(wrt, ErrMalformed("", now))
		return
	}

	msg, err := a.messages.Post(*principal, threadId, body.Content,
		t.ParseUid(body.Parent), body.Attachment)
	if err != nil {
		writeCtrl(wrt, decodeStoreError(err, "", now))
		return
	}
	writeCtrl(wrt, NoErrCreated("", msg, now))
}

func (a *API) messageList(wrt http.ResponseWriter, req *http.Request) {
	now := t.TimeNow()
	threadId := pathUid(req)
	if threadId.IsZero() {
		writeCtrl(wrt, ErrMalformed("", now))
		return
	}

	msgs, err := a.messages.List(threadId)
	if err != nil {
		writeCtrl(wrt, decodeStoreError(err, "", now))
		return
	}
	writeCtrl(wrt, NoErrParams("", msgs, now))
}

func (a *API) messageGet(wrt http.ResponseWriter, req *http.Request) {
	now := t.TimeNow()
	id := pathUid(req)
	if id.IsZero() {
		writeCtrl(wrt, ErrMalformed("", now))
		return
	}

	msg, err := a.messages.Get(id)
	if err != nil {
		writeCtrl(wrt, decodeStoreError(err, "", now))
		return
	}
	writeCtrl(wrt, NoErrParams("", msg, now))
}

func (a *API) messageEdit(wrt http.ResponseWriter, req *http.Request) {
	now := t.TimeNow()
	principal := a.principal(req)
	if principal == nil {
		writeCtrl(wrt, ErrAuthRequired("", now))
		return
	}

	id := pathUid(req)
	if id.IsZero() {
		writeCtrl(wrt, ErrMalformed("", now))
		return
	}

	var body struct {
		Content string `json:"content"`
	}
	if err := decodeBody(req, &body); err != nil {
		writeCtrl(wrt, ErrMalformed("", now))
		return
	}

	msg, err := a.messages.Edit(*principal, id, body.Content)
	if err != nil {
		writeCtrl(wrt, decodeStoreError(err, "", now))
		return
	}
	writeCtrl(wrt, NoErrParams("", msg, now))
}

func (a *API) messageDelete(wrt http.ResponseWriter, req *http.Request) {
	now := t.TimeNow()
	principal := a.principal(req)
	if principal == nil {
		writeCtrl(wrt, ErrAuthRequired("", now))
		return
	}

	id := pathUid(req)
	if id.IsZero() {
		writeCtrl(wrt, ErrMalformed("", now))
		return
	}

	if err := a.messages.Delete(*principal, id); err != nil {
		writeCtrl(wrt, decodeStoreError(err, "", now))
		return
	}
	writeCtrl(wrt, NoErr("", now))
}

func (a *API) messagePin(wrt http.ResponseWriter, req *http.Request) {
	now := t.TimeNow()
	principal := a.principal(req)
	if principal == nil {
		writeCtrl(wrt, ErrAuthRequired("", now))
		return
	}

	id := pathUid(req)
	if id.IsZero() {
		writeCtrl(wrt, ErrMalformed("", now))
		return
	}

	var body struct {
		Pinned bool `json:"pinned"`
	}
	if err := decodeBody(req, &body); err != nil {
		writeCtrl(wrt, ErrMalformed("", now))
		return
	}

	if err := a.messages.Pin(*principal, id, body.Pinned); err != nil {
		writeCtrl(wrt, decodeStoreError(err, "", now))
		return
	}
	writeCtrl(wrt, NoErr("", now))
}

func (a *API) messageHistory(wrt http.ResponseWriter, req *http.Request) {
	now := t.TimeNow()
	principal := a.principal(req)
	if principal == nil {
		writeCtrl(wrt, ErrAuthRequired("", now))
		return
	}

	id := pathUid(req)
	if id.IsZero() {
		writeCtrl(wrt, ErrMalformed("", now))
		return
	}

	edits, err := a.messages.EditHistory(id)
	if err != nil {
		writeCtrl(wrt, decodeStoreError(err, "", now))
		return
	}
	writeCtrl(wrt, NoErrParams("", edits, now))
}

func (a *API) dmChannelOpen(wrt http.ResponseWriter, req *http.Request) {
	now := t.TimeNow()
	principal := a.principal(req)
	if principal == nil {
		writeCtrl(wrt, ErrAuthRequired("", now))
		return
	}

	var body struct {
		User string `json:"user"`
	}
	if err := decodeBody(req, &body); err != nil {
		writeCtrl(wrt, ErrMalformed("", now))
		return
	}

	channel, created, err := a.dms.OpenChannel(*principal, t.ParseUid(body.User))
	if err != nil {
		writeCtrl(wrt, decodeStoreError(err, "", now))
		return
	}
	if created {
		writeCtrl(wrt, NoErrCreated("", channel, now))
	} else {
		writeCtrl(wrt, NoErrParams("", channel, now))
	}
}

func (a *API) dmChannelList(wrt http.ResponseWriter, req *http.Request) {
	now := t.TimeNow()
	principal := a.principal(req)
	if principal == nil {
		writeCtrl(wrt, ErrAuthRequired("", now))
		return
	}

	channels, err := a.dms.ListChannels(*principal)
	if err != nil {
		writeCtrl(wrt, decodeStoreError(err, "", now))
		return
	}
	writeCtrl(wrt, NoErrParams("", channels, now))
}

func (a *API) dmMessagePost(wrt http.ResponseWriter, req *http.Request) {
	now := t.TimeNow()
	principal := a.principal(req)
	if principal == nil {
		writeCtrl(wrt, ErrAuthRequired("", now))
		return
	}

	channelId := pathUid(req)
	if channelId.IsZero() {
		writeCtrl(wrt, ErrMalformed("", now))
		return
	}

	var body struct {
		Content string `json:"content"`
		Parent  string `json:"parent,omitempty"`
	}
	if err := decodeBody(req, &body); err != nil {
		writeCtrl(wrt, ErrMalformed("", now))
		return
	}

	msg, err := a.dms.PostMessage(*principal, channelId, body.Content,
		t.ParseUid(body.Parent))
	if err != nil {
		writeCtrl(wrt, decodeStoreError(err, "", now))
		return
	}
	writeCtrl(wrt, NoErrCreated("", msg, now))
}

func (a *API) dmMessageList(wrt http.ResponseWriter, req *http.Request) {
	now := t.TimeNow()
	principal := a.principal(req)
	if principal == nil {
		writeCtrl(wrt, ErrAuthRequired("", now))
		return
	}

	channelId := pathUid(req)
	if channelId.IsZero() {
		writeCtrl(wrt, ErrMalformed("", now))
		return
	}

	msgs, err := a.dms.ListMessages(*principal, channelId)
	if err != nil {
		writeCtrl(wrt, decodeStoreError(err, "", now))
		return
	}
	writeCtrl(wrt, NoErrParams("", msgs, now))
}

func (a *API) dmMessageEdit(wrt http.ResponseWriter, req *http.Request) {
	now := t.TimeNow()
	principal := a.principal(req)
	if principal == nil {
		writeCtrl(wrt, ErrAuthRequired("", now))
		return
	}

	id := pathUid(req)
	if id.IsZero() {
		writeCtrl(wrt, ErrMalformed("", now))
		return
	}

	var body struct {
		Content string `json:"content"`
	}
	if err := decodeBody(req, &body); err != nil {
		writeCtrl(wrt, ErrMalformed("", now))
		return
	}

	msg, err := a.dms.EditMessage(*principal, id, body.Content)
	if err != nil {
		writeCtrl(wrt, decodeStoreError(err, "", now))
		return
	}
	writeCtrl(wrt, NoErrParams("", msg, now))
}

func (a *API) dmMessageDelete(wrt http.ResponseWriter, req *http.Request) {
	now := t.TimeNow()
	principal := a.principal(req)
	if principal == nil {
		writeCtrl(wrt, ErrAuthRequired("", now))
		return
	}

	id := pathUid(req)
	if id.IsZero() {
		writeCtrl(wrt, ErrMalformed("", now))
		return
	}

	if err := a.dms.DeleteMessage(*principal, id); err != nil {
		writeCtrl(wrt, decodeStoreError(err, "", now))
		return
	}
	writeCtrl(wrt, NoErr("", now))
}

func (a *API) dmMessageHistory(wrt http.ResponseWriter, req *http.Request) {
	now := t.TimeNow()
	principal := a.principal(req)
	if principal == nil {
		writeCtrl(wrt, ErrAuthRequired("", now))
		return
	}

	id := pathUid(req)
	if id.IsZero() {
		writeCtrl(wrt, ErrMalformed("", now))
		return
	}

	edits, err := a.dms.EditHistory(*principal, id)
	if err != nil {
		writeCtrl(wrt, decodeStoreError(err, "", now))
		return
	}
	writeCtrl(wrt, NoErrParams("", edits, now))
}
