package main

import "errors"

var (
	ErrArgCount      = errors.New("wrong number of arguments")
	ErrBlockNumber   = errors.New("invalid block number")
	ErrUnknownFormat = errors.New("unknown encoding format")
	ErrConfigFile    = errors.New("failed to read config file")
	ErrConfigValue   = errors.New("config value out of range")
	ErrHexInput      = errors.New("invalid hex input")
)
