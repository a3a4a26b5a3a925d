// Package environment names the environments the kaanon CLI distinguishes
// when configuring logging.
package environment
