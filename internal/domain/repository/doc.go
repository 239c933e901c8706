// Package repository define los contratos de persistencia del registro de
// usuarios y los errores comunes a todos los adapters.
package repository
