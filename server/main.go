/******************************************************************************
 *
 *  Description :
 *
 *  Process bootstrap: configuration, storage, components, routes.
 *
 *****************************************************************************/

package main

import (
	"encoding/json"
	"flag"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/gorilla/handlers"
	"github.com/tinode/jsonco"

	"github.com/sycs/chat/server/auth"
	"github.com/sycs/chat/server/auth/basic"
	"github.com/sycs/chat/server/auth/token"
	"github.com/sycs/chat/server/logs"
	"github.com/sycs/chat/server/store"

	// Database adapters.
	_ "github.com/sycs/chat/server/db/mysql"
	_ "github.com/sycs/chat/server/db/postgres"
)

// Build timestamp set by the compiler.
var buildstamp = ""

type configType struct {
	// Address:port to listen on.
	Listen string `json:"listen"`
	// Path for exposing runtime stats, "-" to disable.
	ExpvarPath string `json:"expvar"`
	// Worker id for snowflake, unique per replica.
	WorkerID int `json:"worker_id"`
	// Storage config: adapter selection, uid key, per-adapter sections.
	StoreConfig json.RawMessage `json:"store_config"`
	// Per-scheme auth config sections.
	AuthConfig map[string]json.RawMessage `json:"auth_config"`
	// TLS config, see TlsConfig.
	Tls json.RawMessage `json:"tls"`
}

func main() {
	logs.Init()
	logs.Info.Printf("Server v%s pid=%d started with processes: %d", buildstamp,
		os.Getpid(), runtime.GOMAXPROCS(runtime.NumCPU()))

	configfile := flag.String("config", "./chat.conf", "Path to config file.")
	listenOn := flag.String("listen", "", "Override address and port to listen on.")
	initDb := flag.Bool("init_db", false, "Initialize the database then exit.")
	resetDb := flag.Bool("reset_db", false, "Drop and recreate the database then exit.")
	flag.Parse()

	logs.Info.Printf("Using config from '%s'", *configfile)

	var config configType
	if file, err := os.Open(*configfile); err != nil {
		logs.Error.Fatal("Failed to read config file:", err)
	} else {
		jr := jsonco.New(file)
		if err = json.NewDecoder(jr).Decode(&config); err != nil {
			switch jerr := err.(type) {
			case *json.UnmarshalTypeError:
				lnum, cnum, _ := jr.LineAndChar(jerr.Offset)
				logs.Error.Fatalf("Unmarshal error in config file in %s at %d:%d (offset %d bytes): %s",
					jerr.Field, lnum, cnum, jerr.Offset, jerr.Error())
			case *json.SyntaxError:
				lnum, cnum, _ := jr.LineAndChar(jerr.Offset)
				logs.Error.Fatalf("Syntax error in config file at %d:%d (offset %d bytes): %s",
					lnum, cnum, jerr.Offset, jerr.Error())
			default:
				logs.Error.Fatal("Failed to parse config file: ", err)
			}
		}
		file.Close()
	}

	if *listenOn != "" {
		config.Listen = *listenOn
	}

	if *initDb || *resetDb {
		st, err := store.OpenForInit(config.WorkerID, config.StoreConfig)
		if err != nil {
			logs.Error.Fatal("Failed to connect to DB:", err)
		}
		if err = st.InitDb(*resetDb); err != nil {
			logs.Error.Fatal("Failed to initialize DB:", err)
		}
		st.Close()
		logs.Info.Println("Database initialized")
		return
	}

	st, err := store.Open(config.WorkerID, config.StoreConfig)
	if err != nil {
		logs.Error.Fatal("Failed to connect to DB:", err)
	}
	defer func() {
		st.Close()
		logs.Info.Println("Closed database connection(s)")
	}()
	logs.Info.Println("DB adapter:", st.GetAdapterName())

	// Authentication schemes.
	basicAuth := basic.New(st.Users)
	tokenAuth := &token.Authenticator{}
	authHandlers := map[string]auth.AuthHandler{
		"basic": basicAuth,
		"token": tokenAuth,
	}
	for scheme, hdl := range authHandlers {
		conf := config.AuthConfig[scheme]
		if err := hdl.Init(conf, scheme); err != nil {
			logs.Error.Fatalf("Failed to init auth scheme '%s': %v", scheme, err)
		}
	}

	mux := http.NewServeMux()
	statsInit(mux, config.ExpvarPath)

	hub := newHub()

	// Components.
	users := NewUsers(st.Users, basicAuth, tokenAuth)
	social := NewSocial(st.Social, st.Users)
	threads := NewThreads(st.Threads)
	messages := NewMessages(st.Messages, st.Threads, hub)
	dms := NewDMs(st.DMs, st.Social, hub)

	api := NewAPI(users, social, threads, messages, dms)
	api.Register(mux)

	sessions := NewSessionStore(hub, authHandlers, st.DMs)
	mux.HandleFunc("/v1/channels", serveWebSocket(sessions))
	mux.HandleFunc("/", serve404)

	server := &http.Server{
		Addr: config.Listen,
		Handler: handlers.CORS(
			handlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
			handlers.AllowedMethods([]string{"GET", "POST", "PUT", "PATCH", "DELETE"}),
		)(handlers.CombinedLoggingHandler(os.Stdout, mux)),
		ReadHeaderTimeout: 5 * time.Second,
	}

	if err := listenAndServe(server, config.Tls, sessions, hub, signalHandler()); err != nil {
		logs.Error.Fatal(err)
	}
	logs.Info.Println("All done, good bye")
}
