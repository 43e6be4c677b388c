package main

// General API documentation for swaggo. Run `make swagger-gen` to regenerate docs/.
//
// @title           intentd API
// @version         1.0
// @description     Zero-shot intent classification over HTTP.
//
// @contact.name   intentd maintainers
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
