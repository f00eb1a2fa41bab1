// Package config holds the explicit runtime configuration of a terra run.
//
// A Config is a plain value: Default builds one, Load reads TOML (a missing
// file yields Default), Write persists it and Validate checks it. Nothing is
// global; callers pass the sections they need (Noise to the registry,
// Logger to New, and so on).
//
// File layout:
//
//	[Logger]
//	log_level = "INFO"       # DEBUG | INFO | WARN(ING) | ERROR
//	log_file = ""            # appended to in addition to the writer
//	timezone = "UTC"         # IANA name or "Local"
//	clock_style = "12"       # "12" or "24"
//
//	[NoiseGenerator]
//	num_processes = 1
//
//	[World]
//	name = "Unnamed World"
//	width = 64
//	height = 48
//	seed = 0
//	sea_level = 0.0
//	connectivity = 8
//
//	[Biomes]
//	source = ""              # empty selects the embedded defaults
//	matrix_rows = 26
//	matrix_columns = 5
//	water_biome = "Marine"
package config
