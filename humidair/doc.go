// Пакет humidair — расчёт свойств влажного воздуха:
// давление и температура насыщения водяного пара (IAPWS-IF97, регион 4),
// влагосодержание, плотность и удельная энтальпия влажного воздуха,
// температура мокрого термометра и температура точки росы.
//
// Все функции чистые: результат зависит только от аргументов и
// неизменяемой таблицы физических констант, поэтому их можно вызывать
// из нескольких горутин без синхронизации.
//
// https://medsv.github.io/
package humidair
