package sshserv

import (
	"crypto/rand"
	"crypto/rsa"
	"net"
	"strings"
	"time"

	"golang.org/x/crypto/ssh"
)

// execMsg is the wire payload of an "exec" channel request.
type execMsg struct {
	Command string
}

// exitStatusMsg is the wire payload of an "exit-status" channel request.
type exitStatusMsg struct {
	Status uint32
}

// Start launches a test SSH server listening on listenAddr (e.g.,
// 127.0.0.1:20222, or 127.0.0.1:0 for an ephemeral port). It accepts any user
// with no authentication and, for any exec session, echoes the command back as
// "ok: <command>\n" and reports exit status 0 - unless the command contains
// the word "fail", in which case it reports exit status 2. This is enough to
// exercise the one-exec-per-step remote execution path end to end.
// Returns the bound address and a stop function that closes the listener and
// waits for shutdown.
func Start(listenAddr string) (string, func(), error) {
	ln, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return "", nil, err
	}

	stopCh := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		priv, _ := rsa.GenerateKey(rand.Reader, 2048)
		signer, _ := ssh.NewSignerFromKey(priv)
		cfg := &ssh.ServerConfig{NoClientAuth: true}
		cfg.AddHostKey(signer)

		for {
			_ = ln.(*net.TCPListener).SetDeadline(time.Now().Add(500 * time.Millisecond))
			conn, err := ln.Accept()
			select {
			case <-stopCh:
				if conn != nil {
					_ = conn.Close()
				}
				return
			default:
			}
			if err != nil {
				if ne, ok := err.(net.Error); ok && ne.Timeout() {
					continue
				}
				continue
			}
			go handleConn(conn, cfg)
		}
	}()

	stop := func() {
		close(stopCh)
		_ = ln.Close()
		<-done
	}
	return ln.Addr().String(), stop, nil
}

func handleConn(raw net.Conn, cfg *ssh.ServerConfig) {
	sc, chans, reqs, err := ssh.NewServerConn(raw, cfg)
	if err != nil {
		_ = raw.Close()
		return
	}
	_ = sc
	go ssh.DiscardRequests(reqs)
	for ch := range chans {
		if ch.ChannelType() != "session" {
			_ = ch.Reject(ssh.UnknownChannelType, "")
			continue
		}
		c, chReqs, err := ch.Accept()
		if err != nil {
			continue
		}
		go handleSession(c, chReqs)
	}
}

func handleSession(ch ssh.Channel, in <-chan *ssh.Request) {
	defer func() { _ = ch.Close() }()
	for req := range in {
		switch req.Type {
		case "exec":
			var msg execMsg
			_ = ssh.Unmarshal(req.Payload, &msg)
			_ = req.Reply(true, nil)
			_, _ = ch.Write([]byte("ok: " + msg.Command + "\n"))
			status := exitStatusMsg{}
			if strings.Contains(msg.Command, "fail") {
				status.Status = 2
			}
			_, _ = ch.SendRequest("exit-status", false, ssh.Marshal(&status))
			return
		default:
			_ = req.Reply(false, nil)
		}
	}
}
