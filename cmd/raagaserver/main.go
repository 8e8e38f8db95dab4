// Command raagaserver is a small HTTP control surface for raagasynth: it
// serves the static web UI, lists the known raagas and starts/stops the CLI
// as a subprocess. It is process-management glue only; all audio work lives
// in the CLI.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/exec"
	"sync"

	"github.com/cwbudde/algo-raaga/raaga"
)

type cliManager struct {
	mu  sync.Mutex
	cmd *exec.Cmd
	bin string
}

func (m *cliManager) start(raagName string) (string, int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cmd != nil {
		return "already running", http.StatusOK
	}

	cmd := exec.Command(m.bin, "-raag", raagName)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return err.Error(), http.StatusInternalServerError
	}
	m.cmd = cmd

	// Reap the subprocess when it exits on its own.
	go func(c *exec.Cmd) {
		c.Wait()
		m.mu.Lock()
		if m.cmd == c {
			m.cmd = nil
		}
		m.mu.Unlock()
	}(cmd)

	return fmt.Sprintf("started raagasynth in raaga %s", raagName), http.StatusOK
}

func (m *cliManager) stop() (string, int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cmd == nil {
		return "raagasynth was not running", http.StatusOK
	}

	if err := m.cmd.Process.Signal(os.Interrupt); err != nil {
		m.cmd.Process.Kill()
	}
	m.cmd = nil

	return "raagasynth stopped", http.StatusOK
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("raagaserver: ")

	addr := flag.String("addr", ":8000", "listen address")
	bin := flag.String("cli", "raagasynth", "path to the raagasynth binary")
	static := flag.String("static", "static", "directory with web assets")
	flag.Parse()

	reg := raaga.NewRegistry()
	mgr := &cliManager{bin: *bin}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /get_raagas", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string][]string{"raagas": reg.Names()})
	})

	mux.HandleFunc("GET /start_cli", func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Query().Get("raag")
		if _, err := reg.Scale(name); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
			return
		}
		msg, status := mgr.start(name)
		writeJSON(w, status, map[string]string{"message": msg})
	})

	mux.HandleFunc("GET /stop_cli", func(w http.ResponseWriter, r *http.Request) {
		msg, status := mgr.stop()
		writeJSON(w, status, map[string]string{"message": msg})
	})

	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(*static))))
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, *static+"/index.html")
	})

	log.Printf("listening on %s", *addr)
	if err := http.ListenAndServe(*addr, mux); err != nil {
		log.Fatal(err)
	}
}
