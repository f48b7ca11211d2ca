package oasprobe

//go:generate mockgen --source internal/pkg/probe/probe.go --destination mocks/probe.go -package mocks
