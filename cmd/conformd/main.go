// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package conformd provides a daemon hosting the HTTP conformance
// surface.  It serves the typed REST API over a pluggable service
// backend, with Prometheus metrics on /metrics.
package main

import (
	"flag"
	"io/ioutil"

	"github.com/diffeo/go-conformance/backend"
	"github.com/diffeo/go-conformance/fixture"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

func main() {
	var err error

	httpBind := flag.String("http", ":5980",
		"[ip]:port for HTTP REST interface")
	backend := backend.Backend{Implementation: "memory", Address: ""}
	flag.Var(&backend, "backend", "impl[:address] of the service backend")
	fixtures := flag.String("fixtures", "",
		"YAML file of conformance test cases")
	config := flag.String("config", "", "global configuration YAML file")
	logRequests := flag.Bool("log-requests", false, "log all requests")
	flag.Parse()

	var gConfig map[string]interface{}
	if *config != "" {
		gConfig, err = loadConfigYaml(*config)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"err": err,
			}).Fatal("Could not load YAML configuration")
			return
		}
	}
	applyConfig(gConfig)

	var cases []fixture.Case
	if *fixtures != "" {
		cases, err = fixture.Load(*fixtures)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"err":  err,
				"file": *fixtures,
			}).Fatal("Could not load fixture file")
			return
		}
	}

	service, err := backend.Service(cases)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"err": err,
		}).Fatal("Could not create service backend")
		return
	}

	var reqLogger *logrus.Logger
	if *logRequests {
		stdlog := logrus.StandardLogger()
		reqLogger = &logrus.Logger{
			Out:       stdlog.Out,
			Formatter: stdlog.Formatter,
			Hooks:     stdlog.Hooks,
			Level:     logrus.DebugLevel,
		}
	}

	h := &HTTP{service: service, laddr: *httpBind, reqLogger: reqLogger}
	logrus.WithFields(logrus.Fields{
		"bind": *httpBind,
	}).Info("Serving HTTP REST interface")
	h.Serve()
}

func loadConfigYaml(filename string) (map[string]interface{}, error) {
	var result map[string]interface{}
	var err error
	var bytes []byte
	bytes, err = ioutil.ReadFile(filename)
	if err == nil {
		err = yaml.Unmarshal(bytes, &result)
	}
	return result, err
}

// applyConfig picks out the configuration keys the daemon understands.
// Unknown keys are ignored.
func applyConfig(gConfig map[string]interface{}) {
	if levelName, present := gConfig["log_level"].(string); present {
		level, err := logrus.ParseLevel(levelName)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"log_level": levelName,
			}).Warn("Unrecognized log level in configuration")
		} else {
			logrus.SetLevel(level)
		}
	}
}
