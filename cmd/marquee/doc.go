// Package main hosts the marquee CLI entrypoint and command graph.
package main
