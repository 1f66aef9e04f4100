package main

const configTemplate = `# League Roster Configuration
# ===========================
# This file lists the players registered for the season and, optionally, the
# teams to create before the organizer starts.

# Players are identified by their full name, so no two players may share both
# a first and last name. Height is in inches; the balance report groups
# players into 35-40, 41-46 and 47-50 inch ranges. Every 11 players allow one
# more team.
players:
  - {first_name: Joe, last_name: Smith, height_inches: 42, experienced: true}
  - {first_name: Jill, last_name: Tanner, height_inches: 36, experienced: true}
  - {first_name: Bill, last_name: Bon, height_inches: 43, experienced: true}
  - {first_name: Eva, last_name: Gordon, height_inches: 45, experienced: false}
  - {first_name: Matt, last_name: Gill, height_inches: 40, experienced: false}
  - {first_name: Kimmy, last_name: Stein, height_inches: 41, experienced: false}
  - {first_name: Sammy, last_name: Adams, height_inches: 45, experienced: false}
  - {first_name: Karl, last_name: Saygan, height_inches: 42, experienced: true}
  - {first_name: Suzane, last_name: Greenberg, height_inches: 44, experienced: true}
  - {first_name: Sal, last_name: Dali, height_inches: 41, experienced: false}
  - {first_name: Joe, last_name: Kavalier, height_inches: 39, experienced: false}
  - {first_name: Ben, last_name: Finkelstein, height_inches: 44, experienced: false}
  - {first_name: Diego, last_name: Soto, height_inches: 41, experienced: true}
  - {first_name: Chloe, last_name: Alaska, height_inches: 47, experienced: false}
  - {first_name: Arnold, last_name: Willis, height_inches: 43, experienced: false}
  - {first_name: Phillip, last_name: Helm, height_inches: 44, experienced: true}
  - {first_name: Les, last_name: Clay, height_inches: 42, experienced: true}
  - {first_name: Herschel, last_name: Krustofski, height_inches: 45, experienced: true}
  - {first_name: Andrew, last_name: Chalklerz, height_inches: 42, experienced: true}
  - {first_name: Pasan, last_name: Membrane, height_inches: 36, experienced: true}
  - {first_name: Kenny, last_name: Lovins, height_inches: 35, experienced: true}
  - {first_name: Ruth, last_name: Okafor, height_inches: 38, experienced: false}
  - {first_name: Ivan, last_name: Petrov, height_inches: 49, experienced: true}
  - {first_name: Mei, last_name: Tanaka, height_inches: 37, experienced: false}
  - {first_name: Omar, last_name: Haddad, height_inches: 46, experienced: false}
  - {first_name: Nora, last_name: Lindqvist, height_inches: 48, experienced: true}
  - {first_name: Theo, last_name: Brandt, height_inches: 50, experienced: false}
  - {first_name: Priya, last_name: Raman, height_inches: 39, experienced: true}
  - {first_name: Lucas, last_name: Moreau, height_inches: 47, experienced: false}
  - {first_name: Ada, last_name: Quinn, height_inches: 40, experienced: true}
  - {first_name: Felix, last_name: Ortega, height_inches: 46, experienced: true}
  - {first_name: Greta, last_name: Vogel, height_inches: 38, experienced: false}
  - {first_name: Hugo, last_name: Nakamura, height_inches: 43, experienced: false}

# Teams created when the league is loaded. Names must contain only letters
# and be unique, and there can be no more teams than the players allow.
# More teams can be added interactively with "roster play".
teams:
  - name: Strikers
    coach: Amy Ruiz
  - name: Dragons
    coach: Sam Lee
`
