// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Conformcheck replays recorded conformance test cases against a live
// server.  Usage:
//
//	conformcheck --server http://localhost:5980/ --fixtures cases.yaml
//
// Each fixture case is a literal HTTP exchange; conformcheck sends the
// recorded request and compares the observed status, headers, and body
// against the recorded response.  It exits non-zero if any case fails.
package main

import (
	"io/ioutil"
	"net/http"
	"strings"

	"github.com/diffeo/go-conformance/fixture"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()
	app.Usage = "replay conformance fixtures against a server"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "server",
			Value: "http://localhost:5980",
			Usage: "base URL of the server under test",
		},
		cli.StringFlag{
			Name:  "fixtures",
			Usage: "YAML file of conformance test cases",
		},
		cli.BoolFlag{
			Name:  "verbose",
			Usage: "log passing cases too",
		},
	}
	app.HideHelp = true
	app.HideVersion = true
	app.Action = func(c *cli.Context) error {
		if c.String("fixtures") == "" {
			return cli.NewExitError("no --fixtures file given", 2)
		}
		cases, err := fixture.Load(c.String("fixtures"))
		if err != nil {
			return cli.NewExitError(err.Error(), 2)
		}
		if c.Bool("verbose") {
			logrus.SetLevel(logrus.DebugLevel)
		}
		failed := runCases(c.String("server"), cases)
		logrus.WithFields(logrus.Fields{
			"cases":  len(cases),
			"failed": failed,
		}).Info("Finished")
		if failed > 0 {
			return cli.NewExitError("", 1)
		}
		return nil
	}

	app.RunAndExitOnError()
}

// runCases replays every case in order and returns the number that
// failed.
func runCases(server string, cases []fixture.Case) int {
	failed := 0
	for _, c := range cases {
		mismatches, err := runCase(server, c)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"case": c.Name,
				"err":  err,
			}).Error("Could not run test case")
			failed++
			continue
		}
		if len(mismatches) > 0 {
			for _, m := range mismatches {
				logrus.WithFields(logrus.Fields{
					"case": c.Name,
				}).Error(m)
			}
			failed++
		} else {
			logrus.WithFields(logrus.Fields{
				"case": c.Name,
			}).Debug("Passed")
		}
	}
	return failed
}

func runCase(server string, c fixture.Case) ([]string, error) {
	url := strings.TrimSuffix(server, "/") + c.Request.URI
	var body *strings.Reader
	if c.Request.Body != "" {
		body = strings.NewReader(c.Request.Body)
	} else {
		body = strings.NewReader("")
	}
	req, err := http.NewRequest(c.Request.Method, url, body)
	if err != nil {
		return nil, err
	}
	for name, value := range c.Request.Headers {
		req.Header.Set(name, value)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	respBody, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return c.Check(resp.StatusCode, resp.Header, respBody), nil
}
