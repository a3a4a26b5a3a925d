// Command kaanon prints random entries, formatted names or synthetic email
// addresses drawn from a JSON or YAML tag dataset.
//
//	kaanon --dataset kaanon.json sample -c paikka -n 5
//	kaanon --dataset kaanon.yaml names
//	kaanon --dataset kaanon.json emails --domain example.org -n 10 --pad
//
// Settings can also come from KAANON_* environment variables or a .env file;
// flags win. Logs go to stderr, results to stdout, one per line.
package main
